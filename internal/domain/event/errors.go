package event

import "errors"

// Event ドメインのエラー定義
var (
	ErrEventNotFound       = errors.New("イベントが見つかりません")
	ErrDescriptionRequired = errors.New("イベントの説明は必須です")
	ErrInvalidEventDates   = errors.New("終了日は開始日以降である必要があります")
)
