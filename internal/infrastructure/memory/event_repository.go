package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) GetByID(_ context.Context, id int64) (*event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.events[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	return r.hydrateLocked(row), nil
}

// Save はイベントと関連（参加者ID・ロジスティクスID）を置き換えて保存する
// 参照先が存在しない場合は外部キー違反と同じく何も書かずに失敗する。
func (r *EventRepository) Save(_ context.Context, e *event.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if e.ID != 0 {
		if _, ok := r.store.events[e.ID]; !ok {
			return event.ErrEventNotFound
		}
	}

	row := eventRow{
		description: e.Description,
		startDate:   e.StartDate,
		endDate:     e.EndDate,
		cost:        e.Cost,
	}
	for _, pid := range e.ParticipantIDs {
		if _, ok := r.store.participants[pid]; !ok {
			return fmt.Errorf("%w: %d", participant.ErrParticipantNotFound, pid)
		}
		if !containsID(row.participantIDs, pid) {
			row.participantIDs = append(row.participantIDs, pid)
		}
	}
	for _, l := range e.Logistics {
		if _, ok := r.store.logistics[l.ID]; !ok {
			return fmt.Errorf("%w: %d", logistics.ErrLogisticsNotFound, l.ID)
		}
		if !containsID(row.logisticsIDs, l.ID) {
			row.logisticsIDs = append(row.logisticsIDs, l.ID)
		}
	}

	if e.ID == 0 {
		r.store.eventSeq++
		e.ID = r.store.eventSeq
	}
	row.id = e.ID
	r.store.events[e.ID] = row
	return nil
}

func (r *EventRepository) UpdateCost(_ context.Context, id int64, cost float64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.events[id]
	if !ok {
		return event.ErrEventNotFound
	}
	row.cost = cost
	r.store.events[id] = row
	return nil
}

// FindFirstByDescription は一致するもののうちIDが最も小さいものを返す
func (r *EventRepository) FindFirstByDescription(_ context.Context, description string) (*event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range sortedKeys(r.store.events) {
		row := r.store.events[id]
		if row.description == description {
			return r.hydrateLocked(row), nil
		}
	}
	return nil, event.ErrEventNotFound
}

func (r *EventRepository) FindByStartDateBetween(_ context.Context, start, end time.Time) ([]*event.Event, error) {
	return r.filter(func(row eventRow) bool {
		// 開始日のないイベントは対象外（postgres の NULL と同じ扱い）
		return !row.startDate.IsZero() && !row.startDate.Before(start) && !row.startDate.After(end)
	}), nil
}

func (r *EventRepository) FindByParticipant(_ context.Context, sel event.ParticipantSelector) ([]*event.Event, error) {
	r.store.mu.RLock()
	matched := make([]int64, 0)
	for _, id := range sortedKeys(r.store.participants) {
		p := r.store.participants[id]
		if p.Matches(sel.Surname, sel.Name, sel.Role) {
			matched = append(matched, id)
		}
	}
	r.store.mu.RUnlock()

	return r.filter(func(row eventRow) bool {
		for _, pid := range row.participantIDs {
			if containsID(matched, pid) {
				return true
			}
		}
		return false
	}), nil
}

func (r *EventRepository) ListByParticipantID(_ context.Context, participantID int64) ([]*event.Event, error) {
	return r.filter(func(row eventRow) bool {
		return containsID(row.participantIDs, participantID)
	}), nil
}

func (r *EventRepository) filter(match func(eventRow) bool) []*event.Event {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*event.Event, 0)
	for _, id := range sortedKeys(r.store.events) {
		row := r.store.events[id]
		if match(row) {
			result = append(result, r.hydrateLocked(row))
		}
	}
	return result
}

// hydrateLocked は呼び出し側でロックを取っていること
func (r *EventRepository) hydrateLocked(row eventRow) *event.Event {
	e := &event.Event{
		ID:          row.id,
		Description: row.description,
		StartDate:   row.startDate,
		EndDate:     row.endDate,
		Cost:        row.cost,
	}
	if len(row.participantIDs) > 0 {
		e.ParticipantIDs = append([]int64(nil), row.participantIDs...)
	}
	for _, lid := range row.logisticsIDs {
		l := r.store.logistics[lid]
		e.Logistics = append(e.Logistics, &l)
	}
	return e
}

var _ event.Repository = (*EventRepository)(nil)
