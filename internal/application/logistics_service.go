package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/metrics"
)

type LogisticsService struct {
	eventRepo     event.Repository
	logisticsRepo logistics.Repository
	metrics       *metrics.Metrics
}

func NewLogisticsService(er event.Repository, lr logistics.Repository, m *metrics.Metrics) *LogisticsService {
	return &LogisticsService{eventRepo: er, logisticsRepo: lr, metrics: m}
}

// AttachLogistics は説明で特定したイベントにロジスティクスを紐づける
//
// イベントの検索が先。見つからなければ何も保存しない。
// ロジスティクスは単体で保存してIDを確定させてから、イベントの集合に追加して保存する。
func (s *LogisticsService) AttachLogistics(ctx context.Context, l *logistics.Logistics, description string) (_ *logistics.Logistics, err error) {
	done := track(s.metrics, "attach_logistics")
	defer func() { done(err) }()

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}

	e, err := s.eventRepo.FindFirstByDescription(ctx, description)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return nil, fmt.Errorf("%w: description=%q", event.ErrEventNotFound, description)
		}
		return nil, fmt.Errorf("イベント検索に失敗しました: %w", err)
	}

	if err := s.logisticsRepo.Save(ctx, l); err != nil {
		return nil, fmt.Errorf("ロジスティクス保存に失敗しました: %w", err)
	}
	if err := e.AddLogistics(l); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("イベント保存に失敗しました: %w", err)
	}
	return l, nil
}

// ReservedLogisticsInRange は開始日が [start, end] のイベントに紐づく予約済みロジスティクスを返す
// 並び順は保証しない
func (s *LogisticsService) ReservedLogisticsInRange(ctx context.Context, start, end time.Time) (_ []*logistics.Logistics, err error) {
	done := track(s.metrics, "reserved_logistics_in_range")
	defer func() { done(err) }()

	events, err := s.eventRepo.FindByStartDateBetween(ctx, event.TruncateDate(start), event.TruncateDate(end))
	if err != nil {
		return nil, fmt.Errorf("期間内のイベント取得に失敗しました: %w", err)
	}

	result := make([]*logistics.Logistics, 0)
	for _, e := range events {
		result = append(result, e.ReservedLogistics()...)
	}
	return result, nil
}
