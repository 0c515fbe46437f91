package logistics

import "context"

// Repository はロジスティクスリポジトリのインターフェース
type Repository interface {
	// GetByID はIDからロジスティクスを取得する
	GetByID(ctx context.Context, id int64) (*Logistics, error)

	// Save はロジスティクスを保存する。IDが0なら採番して作成、それ以外は更新
	Save(ctx context.Context, l *Logistics) error
}
