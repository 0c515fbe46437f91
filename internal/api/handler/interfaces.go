package handler

import (
	"context"
	"time"

	"github.com/sanosuguru/go-event-logistics/internal/application"
	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
)

// ParticipantServiceInterface は参加者サービスのインターフェース
type ParticipantServiceInterface interface {
	CreateParticipant(ctx context.Context, input application.CreateParticipantInput) (*participant.Participant, error)
	GetParticipant(ctx context.Context, id int64) (*participant.Participant, error)
}

// AssociationServiceInterface は参加者とイベントの関連付けサービスのインターフェース
type AssociationServiceInterface interface {
	LinkByParticipantID(ctx context.Context, e *event.Event, participantID int64) (*event.Event, error)
	LinkAllParticipants(ctx context.Context, e *event.Event) (*event.Event, error)
	EventsFor(ctx context.Context, participantID int64) ([]*event.Event, error)
	ParticipantsFor(ctx context.Context, eventID int64) ([]*participant.Participant, error)
}

// LogisticsServiceInterface はロジスティクスサービスのインターフェース
type LogisticsServiceInterface interface {
	AttachLogistics(ctx context.Context, l *logistics.Logistics, description string) (*logistics.Logistics, error)
	ReservedLogisticsInRange(ctx context.Context, start, end time.Time) ([]*logistics.Logistics, error)
}

// CostJobRunner はコスト再計算を即時に1回実行する
type CostJobRunner interface {
	RunOnce(ctx context.Context) (*application.CostRecalculationResult, error)
}
