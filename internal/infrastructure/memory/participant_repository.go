package memory

import (
	"context"

	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

type ParticipantRepository struct {
	store *Store
}

func NewParticipantRepository(store *Store) *ParticipantRepository {
	return &ParticipantRepository{store: store}
}

func (r *ParticipantRepository) GetByID(_ context.Context, id int64) (*participant.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.participants[id]
	if !ok {
		return nil, participant.ErrParticipantNotFound
	}
	return &p, nil
}

// ListByIDs は存在するものだけをID順で返す
func (r *ParticipantRepository) ListByIDs(_ context.Context, ids []int64) ([]*participant.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*participant.Participant, 0, len(ids))
	for _, id := range sortedKeys(r.store.participants) {
		if !containsID(ids, id) {
			continue
		}
		p := r.store.participants[id]
		result = append(result, &p)
	}
	return result, nil
}

func (r *ParticipantRepository) Save(_ context.Context, p *participant.Participant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if p.ID == 0 {
		r.store.participantSeq++
		p.ID = r.store.participantSeq
	} else if _, ok := r.store.participants[p.ID]; !ok {
		return participant.ErrParticipantNotFound
	}
	r.store.participants[p.ID] = *p
	return nil
}

var _ participant.Repository = (*ParticipantRepository)(nil)
