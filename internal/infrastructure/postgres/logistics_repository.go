package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
)

type logisticsRow struct {
	ID          int64   `db:"id"`
	Description string  `db:"description"`
	Reserved    bool    `db:"reserved"`
	UnitPrice   float64 `db:"unit_price"`
	Quantity    int     `db:"quantity"`
}

func (r *logisticsRow) toEntity() *logistics.Logistics {
	return &logistics.Logistics{
		ID:          r.ID,
		Description: r.Description,
		Reserved:    r.Reserved,
		UnitPrice:   r.UnitPrice,
		Quantity:    r.Quantity,
	}
}

// LogisticsRepository はロジスティクスリポジトリのPostgreSQL実装
type LogisticsRepository struct {
	db *sqlx.DB
}

func NewLogisticsRepository(db *sqlx.DB) *LogisticsRepository {
	return &LogisticsRepository{db: db}
}

func (r *LogisticsRepository) GetByID(ctx context.Context, id int64) (*logistics.Logistics, error) {
	var row logisticsRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, description, reserved, unit_price, quantity FROM logistics WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, logistics.ErrLogisticsNotFound
		}
		return nil, fmt.Errorf("ロジスティクス取得に失敗しました: %w", err)
	}
	return row.toEntity(), nil
}

func (r *LogisticsRepository) Save(ctx context.Context, l *logistics.Logistics) error {
	if l.ID == 0 {
		err := r.db.QueryRowContext(ctx,
			`INSERT INTO logistics (description, reserved, unit_price, quantity) VALUES ($1, $2, $3, $4) RETURNING id`,
			l.Description, l.Reserved, l.UnitPrice, l.Quantity,
		).Scan(&l.ID)
		if err != nil {
			return fmt.Errorf("ロジスティクス作成に失敗しました: %w", err)
		}
		return nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE logistics SET description = $1, reserved = $2, unit_price = $3, quantity = $4 WHERE id = $5`,
		l.Description, l.Reserved, l.UnitPrice, l.Quantity, l.ID,
	)
	if err != nil {
		return fmt.Errorf("ロジスティクス更新に失敗しました: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return logistics.ErrLogisticsNotFound
	}
	return nil
}

var _ logistics.Repository = (*LogisticsRepository)(nil)
