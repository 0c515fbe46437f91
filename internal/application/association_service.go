package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/metrics"
)

// AssociationService は参加者とイベントの関連付けを扱う
//
// 関連は event.ParticipantIDs としてイベント側が所有し、イベントの保存と一緒に永続化される。
// 参加者レコードはここでは一切保存しない（参加者側へのカスケード書き込みはしない）。
// 参加者からイベントへの方向は EventsFor で関連レコードから引く。
type AssociationService struct {
	participantRepo participant.Repository
	eventRepo       event.Repository
	metrics         *metrics.Metrics
}

func NewAssociationService(pr participant.Repository, er event.Repository, m *metrics.Metrics) *AssociationService {
	return &AssociationService{participantRepo: pr, eventRepo: er, metrics: m}
}

// LinkByParticipantID は参加者をIDで解決してイベントに関連付け、イベントを保存する
func (s *AssociationService) LinkByParticipantID(ctx context.Context, e *event.Event, participantID int64) (_ *event.Event, err error) {
	done := track(s.metrics, "link_by_participant_id")
	defer func() { done(err) }()

	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}

	p, err := s.resolveParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if e, err = s.mergeStored(ctx, e); err != nil {
		return nil, err
	}
	e.AddParticipant(p.ID)

	if err := s.eventRepo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("イベント保存に失敗しました: %w", err)
	}
	return e, nil
}

// LinkAllParticipants はイベントが持つ参加者IDをすべて解決してからイベントを一度だけ保存する
// 参加者がいなければそのまま保存する。解決できないIDがあれば何も保存せずに失敗する。
func (s *AssociationService) LinkAllParticipants(ctx context.Context, e *event.Event) (_ *event.Event, err error) {
	done := track(s.metrics, "link_all_participants")
	defer func() { done(err) }()

	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}

	for _, id := range e.ParticipantIDs {
		if _, err := s.resolveParticipant(ctx, id); err != nil {
			return nil, err
		}
	}
	if e, err = s.mergeStored(ctx, e); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("イベント保存に失敗しました: %w", err)
	}
	return e, nil
}

// EventsFor は参加者が関連付けられているイベントを返す
func (s *AssociationService) EventsFor(ctx context.Context, participantID int64) ([]*event.Event, error) {
	if _, err := s.resolveParticipant(ctx, participantID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("参加者のイベント取得に失敗しました: %w", err)
	}
	return events, nil
}

// ParticipantsFor はイベントに関連付けられている参加者を返す
func (s *AssociationService) ParticipantsFor(ctx context.Context, eventID int64) ([]*participant.Participant, error) {
	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return nil, fmt.Errorf("%w: %d", event.ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("イベント取得に失敗しました: %w", err)
	}
	if len(e.ParticipantIDs) == 0 {
		return []*participant.Participant{}, nil
	}
	participants, err := s.participantRepo.ListByIDs(ctx, e.ParticipantIDs)
	if err != nil {
		return nil, fmt.Errorf("イベントの参加者取得に失敗しました: %w", err)
	}
	return participants, nil
}

// mergeStored はIDのあるイベントを保存済みのイベントに重ねて返す
//
// 説明と日付はリクエストの値で上書きする（日付は指定があるときだけ）。
// 参加者は保存済みの集合に追加するだけで、外すことはない。
// コストとロジスティクスは保存済みのものを保つ。
func (s *AssociationService) mergeStored(ctx context.Context, e *event.Event) (*event.Event, error) {
	if e.ID == 0 {
		return e, nil
	}

	stored, err := s.eventRepo.GetByID(ctx, e.ID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return nil, fmt.Errorf("%w: %d", event.ErrEventNotFound, e.ID)
		}
		return nil, fmt.Errorf("イベント取得に失敗しました: %w", err)
	}

	stored.Description = e.Description
	if !e.StartDate.IsZero() {
		stored.StartDate = e.StartDate
	}
	if !e.EndDate.IsZero() {
		stored.EndDate = e.EndDate
	}
	if err := stored.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}
	for _, id := range e.ParticipantIDs {
		stored.AddParticipant(id)
	}
	return stored, nil
}

func (s *AssociationService) resolveParticipant(ctx context.Context, id int64) (*participant.Participant, error) {
	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, participant.ErrParticipantNotFound) {
			return nil, fmt.Errorf("%w: %d", participant.ErrParticipantNotFound, id)
		}
		return nil, fmt.Errorf("参加者取得に失敗しました: %w", err)
	}
	return p, nil
}
