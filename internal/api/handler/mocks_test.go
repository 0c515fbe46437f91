package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-event-logistics/internal/application"
	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

// MockParticipantService はParticipantServiceInterfaceのモック
type MockParticipantService struct {
	mock.Mock
}

func (m *MockParticipantService) CreateParticipant(ctx context.Context, input application.CreateParticipantInput) (*participant.Participant, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Participant), args.Error(1)
}

func (m *MockParticipantService) GetParticipant(ctx context.Context, id int64) (*participant.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Participant), args.Error(1)
}

// MockAssociationService はAssociationServiceInterfaceのモック
type MockAssociationService struct {
	mock.Mock
}

func (m *MockAssociationService) LinkByParticipantID(ctx context.Context, e *event.Event, participantID int64) (*event.Event, error) {
	args := m.Called(ctx, e, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockAssociationService) LinkAllParticipants(ctx context.Context, e *event.Event) (*event.Event, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockAssociationService) EventsFor(ctx context.Context, participantID int64) ([]*event.Event, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockAssociationService) ParticipantsFor(ctx context.Context, eventID int64) ([]*participant.Participant, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*participant.Participant), args.Error(1)
}

// MockLogisticsService はLogisticsServiceInterfaceのモック
type MockLogisticsService struct {
	mock.Mock
}

func (m *MockLogisticsService) AttachLogistics(ctx context.Context, l *logistics.Logistics, description string) (*logistics.Logistics, error) {
	args := m.Called(ctx, l, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Logistics), args.Error(1)
}

func (m *MockLogisticsService) ReservedLogisticsInRange(ctx context.Context, start, end time.Time) ([]*logistics.Logistics, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*logistics.Logistics), args.Error(1)
}

// MockCostJobRunner はCostJobRunnerのモック
type MockCostJobRunner struct {
	mock.Mock
}

func (m *MockCostJobRunner) RunOnce(ctx context.Context) (*application.CostRecalculationResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.CostRecalculationResult), args.Error(1)
}
