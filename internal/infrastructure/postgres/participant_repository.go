package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

type participantRow struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Surname string `db:"surname"`
	Role    string `db:"role"`
}

func (r *participantRow) toEntity() *participant.Participant {
	return &participant.Participant{
		ID:      r.ID,
		Name:    r.Name,
		Surname: r.Surname,
		Role:    participant.Role(r.Role),
	}
}

// ParticipantRepository は参加者リポジトリのPostgreSQL実装
type ParticipantRepository struct {
	db *sqlx.DB
}

func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id int64) (*participant.Participant, error) {
	var row participantRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, surname, role FROM participants WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, participant.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("参加者取得に失敗しました: %w", err)
	}
	return row.toEntity(), nil
}

func (r *ParticipantRepository) ListByIDs(ctx context.Context, ids []int64) ([]*participant.Participant, error) {
	var rows []participantRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name, surname, role FROM participants WHERE id = ANY($1) ORDER BY id`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("参加者一覧取得に失敗しました: %w", err)
	}

	result := make([]*participant.Participant, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

// Save はIDが0なら作成、それ以外は更新する
func (r *ParticipantRepository) Save(ctx context.Context, p *participant.Participant) error {
	if p.ID == 0 {
		err := r.db.QueryRowContext(ctx,
			`INSERT INTO participants (name, surname, role) VALUES ($1, $2, $3) RETURNING id`,
			p.Name, p.Surname, string(p.Role),
		).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("参加者作成に失敗しました: %w", err)
		}
		return nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE participants SET name = $1, surname = $2, role = $3 WHERE id = $4`,
		p.Name, p.Surname, string(p.Role), p.ID,
	)
	if err != nil {
		return fmt.Errorf("参加者更新に失敗しました: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return participant.ErrParticipantNotFound
	}
	return nil
}

var _ participant.Repository = (*ParticipantRepository)(nil)
