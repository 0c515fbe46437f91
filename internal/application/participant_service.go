package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/metrics"
)

type ParticipantService struct {
	participantRepo participant.Repository
	metrics         *metrics.Metrics
}

func NewParticipantService(pr participant.Repository, m *metrics.Metrics) *ParticipantService {
	return &ParticipantService{participantRepo: pr, metrics: m}
}

type CreateParticipantInput struct {
	Name    string
	Surname string
	Role    participant.Role
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, input CreateParticipantInput) (p *participant.Participant, err error) {
	done := track(s.metrics, "create_participant")
	defer func() { done(err) }()

	p = participant.NewParticipant(input.Name, input.Surname, input.Role)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}
	if err := s.participantRepo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("参加者作成に失敗しました: %w", err)
	}
	return p, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id int64) (*participant.Participant, error) {
	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, participant.ErrParticipantNotFound) {
			return nil, fmt.Errorf("%w: %d", participant.ErrParticipantNotFound, id)
		}
		return nil, fmt.Errorf("参加者取得に失敗しました: %w", err)
	}
	return p, nil
}
