package participant

import "errors"

// Participant ドメインのエラー定義
var (
	ErrParticipantNotFound = errors.New("参加者が見つかりません")
	ErrInvalidRole         = errors.New("役割が不正です")
)
