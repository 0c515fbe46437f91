package logistics

import "errors"

// Logistics ドメインのエラー定義
var (
	ErrLogisticsNotFound = errors.New("ロジスティクスが見つかりません")
	ErrInvalidUnitPrice  = errors.New("単価は0以上である必要があります")
	ErrInvalidQuantity   = errors.New("数量は0以上である必要があります")
	ErrNotPersisted      = errors.New("保存前のロジスティクスはイベントに紐づけできません")
)
