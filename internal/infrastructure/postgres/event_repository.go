package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
)

const eventColumns = `e.id, e.description, e.start_date, e.end_date, e.cost`

// eventRow はDBの行を表す構造体
type eventRow struct {
	ID          int64      `db:"id"`
	Description string     `db:"description"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Cost        float64    `db:"cost"`
}

func (r *eventRow) toEntity() *event.Event {
	e := &event.Event{
		ID:          r.ID,
		Description: r.Description,
		Cost:        r.Cost,
	}
	if r.StartDate != nil {
		e.StartDate = event.TruncateDate(*r.StartDate)
	}
	if r.EndDate != nil {
		e.EndDate = event.TruncateDate(*r.EndDate)
	}
	return e
}

type eventParticipantRow struct {
	EventID       int64 `db:"event_id"`
	ParticipantID int64 `db:"participant_id"`
}

type eventLogisticsRow struct {
	EventID     int64   `db:"event_id"`
	ID          int64   `db:"id"`
	Description string  `db:"description"`
	Reserved    bool    `db:"reserved"`
	UnitPrice   float64 `db:"unit_price"`
	Quantity    int     `db:"quantity"`
}

// EventRepository はイベントリポジトリのPostgreSQL実装
//
// 参加者との関連は event_participants、ロジスティクスとの関連は event_logistics に持つ。
// Save は両方の関連をイベントの内容で置き換えるが、participants と logistics 自体は書き換えない。
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository はEventRepositoryを作成する
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// GetByID はIDからイベントを取得する
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*event.Event, error) {
	var row eventRow
	err := r.db.GetContext(ctx, &row, `SELECT `+eventColumns+` FROM events e WHERE e.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("イベント取得に失敗しました: %w", err)
	}

	events, err := r.hydrate(ctx, []eventRow{row})
	if err != nil {
		return nil, err
	}
	return events[0], nil
}

// Save はイベントを保存し、関連テーブルを置き換える
func (r *EventRepository) Save(ctx context.Context, e *event.Event) error {
	id := e.ID
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if id == 0 {
			err := tx.QueryRowContext(ctx,
				`INSERT INTO events (description, start_date, end_date, cost) VALUES ($1, $2, $3, $4) RETURNING id`,
				e.Description, nullableDate(e.StartDate), nullableDate(e.EndDate), e.Cost,
			).Scan(&id)
			if err != nil {
				return fmt.Errorf("イベント作成に失敗しました: %w", err)
			}
		} else {
			result, err := tx.ExecContext(ctx,
				`UPDATE events SET description = $1, start_date = $2, end_date = $3, cost = $4 WHERE id = $5`,
				e.Description, nullableDate(e.StartDate), nullableDate(e.EndDate), e.Cost, id,
			)
			if err != nil {
				return fmt.Errorf("イベント更新に失敗しました: %w", err)
			}
			rows, _ := result.RowsAffected()
			if rows == 0 {
				return event.ErrEventNotFound
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM event_participants WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("参加者関連の削除に失敗しました: %w", err)
		}
		for _, pid := range e.ParticipantIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO event_participants (event_id, participant_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				id, pid,
			); err != nil {
				if mapped := mapForeignKeyError(err); mapped != nil {
					return mapped
				}
				return fmt.Errorf("参加者関連付けに失敗しました: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM event_logistics WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("ロジスティクス関連の削除に失敗しました: %w", err)
		}
		for _, l := range e.Logistics {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO event_logistics (event_id, logistics_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				id, l.ID,
			); err != nil {
				if mapped := mapForeignKeyError(err); mapped != nil {
					return mapped
				}
				return fmt.Errorf("ロジスティクス関連付けに失敗しました: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// コミットできた場合だけIDを反映する
	e.ID = id
	return nil
}

// UpdateCost はコスト列だけを更新する
// 関連テーブルを置き換えないので、並行して追加されたロジスティクスを消さない
func (r *EventRepository) UpdateCost(ctx context.Context, id int64, cost float64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE events SET cost = $1 WHERE id = $2`, cost, id)
	if err != nil {
		return fmt.Errorf("コスト更新に失敗しました: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("コスト更新に失敗しました: %w", err)
	}
	if rows == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

// FindFirstByDescription は説明が一致するイベントのうちIDが最小のものを返す
func (r *EventRepository) FindFirstByDescription(ctx context.Context, description string) (*event.Event, error) {
	var row eventRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+eventColumns+` FROM events e WHERE e.description = $1 ORDER BY e.id LIMIT 1`,
		description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("イベント検索に失敗しました: %w", err)
	}

	events, err := r.hydrate(ctx, []eventRow{row})
	if err != nil {
		return nil, err
	}
	return events[0], nil
}

// FindByStartDateBetween は開始日が [start, end] のイベントを返す
func (r *EventRepository) FindByStartDateBetween(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	return r.selectEvents(ctx,
		`SELECT `+eventColumns+` FROM events e WHERE e.start_date BETWEEN $1 AND $2 ORDER BY e.id`,
		start, end,
	)
}

// FindByParticipant は姓・名・役割が一致する参加者を含むイベントを返す
func (r *EventRepository) FindByParticipant(ctx context.Context, sel event.ParticipantSelector) ([]*event.Event, error) {
	return r.selectEvents(ctx, `
		SELECT DISTINCT `+eventColumns+`
		FROM events e
		JOIN event_participants ep ON ep.event_id = e.id
		JOIN participants p ON p.id = ep.participant_id
		WHERE p.surname = $1 AND p.name = $2 AND p.role = $3
		ORDER BY e.id
	`, sel.Surname, sel.Name, string(sel.Role))
}

// ListByParticipantID は参加者IDが関連付けられたイベントを返す
func (r *EventRepository) ListByParticipantID(ctx context.Context, participantID int64) ([]*event.Event, error) {
	return r.selectEvents(ctx, `
		SELECT `+eventColumns+`
		FROM events e
		JOIN event_participants ep ON ep.event_id = e.id
		WHERE ep.participant_id = $1
		ORDER BY e.id
	`, participantID)
}

func (r *EventRepository) selectEvents(ctx context.Context, query string, args ...interface{}) ([]*event.Event, error) {
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("イベント一覧取得に失敗しました: %w", err)
	}
	return r.hydrate(ctx, rows)
}

// hydrate は関連テーブルから参加者IDとロジスティクスを読み込む
// 行数によらずクエリは2本
func (r *EventRepository) hydrate(ctx context.Context, rows []eventRow) ([]*event.Event, error) {
	events := make([]*event.Event, len(rows))
	if len(rows) == 0 {
		return events, nil
	}

	ids := make([]int64, len(rows))
	byID := make(map[int64]*event.Event, len(rows))
	for i := range rows {
		events[i] = rows[i].toEntity()
		ids[i] = rows[i].ID
		byID[rows[i].ID] = events[i]
	}

	var links []eventParticipantRow
	if err := r.db.SelectContext(ctx, &links,
		`SELECT event_id, participant_id FROM event_participants WHERE event_id = ANY($1) ORDER BY participant_id`,
		pq.Array(ids),
	); err != nil {
		return nil, fmt.Errorf("参加者関連の取得に失敗しました: %w", err)
	}
	for _, link := range links {
		byID[link.EventID].ParticipantIDs = append(byID[link.EventID].ParticipantIDs, link.ParticipantID)
	}

	var items []eventLogisticsRow
	if err := r.db.SelectContext(ctx, &items, `
		SELECT el.event_id, l.id, l.description, l.reserved, l.unit_price, l.quantity
		FROM event_logistics el
		JOIN logistics l ON l.id = el.logistics_id
		WHERE el.event_id = ANY($1)
		ORDER BY l.id
	`, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("ロジスティクスの取得に失敗しました: %w", err)
	}
	for i := range items {
		e := byID[items[i].EventID]
		row := logisticsRow{
			ID:          items[i].ID,
			Description: items[i].Description,
			Reserved:    items[i].Reserved,
			UnitPrice:   items[i].UnitPrice,
			Quantity:    items[i].Quantity,
		}
		e.Logistics = append(e.Logistics, row.toEntity())
	}

	return events, nil
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	d := event.TruncateDate(t)
	return &d
}

var _ event.Repository = (*EventRepository)(nil)
