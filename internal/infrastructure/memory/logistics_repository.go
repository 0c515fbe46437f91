package memory

import (
	"context"

	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
)

type LogisticsRepository struct {
	store *Store
}

func NewLogisticsRepository(store *Store) *LogisticsRepository {
	return &LogisticsRepository{store: store}
}

func (r *LogisticsRepository) GetByID(_ context.Context, id int64) (*logistics.Logistics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.logistics[id]
	if !ok {
		return nil, logistics.ErrLogisticsNotFound
	}
	return &l, nil
}

func (r *LogisticsRepository) Save(_ context.Context, l *logistics.Logistics) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if l.ID == 0 {
		r.store.logisticsSeq++
		l.ID = r.store.logisticsSeq
	} else if _, ok := r.store.logistics[l.ID]; !ok {
		return logistics.ErrLogisticsNotFound
	}
	r.store.logistics[l.ID] = *l
	return nil
}

var _ logistics.Repository = (*LogisticsRepository)(nil)
