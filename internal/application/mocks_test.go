package application

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

// MockParticipantRepository は participant.Repository のモック
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) GetByID(ctx context.Context, id int64) (*participant.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Participant), args.Error(1)
}

func (m *MockParticipantRepository) ListByIDs(ctx context.Context, ids []int64) ([]*participant.Participant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*participant.Participant), args.Error(1)
}

func (m *MockParticipantRepository) Save(ctx context.Context, p *participant.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockEventRepository は event.Repository のモック
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventRepository) Save(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateCost(ctx context.Context, id int64, cost float64) error {
	args := m.Called(ctx, id, cost)
	return args.Error(0)
}

func (m *MockEventRepository) FindFirstByDescription(ctx context.Context, description string) (*event.Event, error) {
	args := m.Called(ctx, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventRepository) FindByStartDateBetween(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockEventRepository) FindByParticipant(ctx context.Context, sel event.ParticipantSelector) ([]*event.Event, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockEventRepository) ListByParticipantID(ctx context.Context, participantID int64) ([]*event.Event, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

// MockLogisticsRepository は logistics.Repository のモック
type MockLogisticsRepository struct {
	mock.Mock
}

func (m *MockLogisticsRepository) GetByID(ctx context.Context, id int64) (*logistics.Logistics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Logistics), args.Error(1)
}

func (m *MockLogisticsRepository) Save(ctx context.Context, l *logistics.Logistics) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

var (
	_ participant.Repository = (*MockParticipantRepository)(nil)
	_ event.Repository       = (*MockEventRepository)(nil)
	_ logistics.Repository   = (*MockLogisticsRepository)(nil)
)
