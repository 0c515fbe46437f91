package participant

import "context"

// Repository は参加者リポジトリのインターフェース
type Repository interface {
	// GetByID はIDから参加者を取得する（存在しない場合は ErrParticipantNotFound）
	GetByID(ctx context.Context, id int64) (*Participant, error)

	// ListByIDs は複数IDの参加者を取得する。存在しないIDは無視される
	ListByIDs(ctx context.Context, ids []int64) ([]*Participant, error)

	// Save は参加者を保存する。IDが0なら採番して作成、それ以外は更新
	Save(ctx context.Context, p *Participant) error
}
