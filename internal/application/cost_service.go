package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/logger"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/metrics"
)

// CostService はイベントのコストを予約済みロジスティクスから再計算する
type CostService struct {
	eventRepo event.Repository
	selector  event.ParticipantSelector
	metrics   *metrics.Metrics
}

func NewCostService(er event.Repository, selector event.ParticipantSelector, m *metrics.Metrics) *CostService {
	return &CostService{eventRepo: er, selector: selector, metrics: m}
}

// CostRecalculationResult は1回の再計算の結果
type CostRecalculationResult struct {
	// 保存まで完了したイベント数
	Events int
	// 実行終了時点の累積額
	Total float64
}

// RecalculateCosts は対象イベントのコストを再計算して1件ずつ保存する
// 書き込むのはコストだけで、実行中に追加された関連は消さない。
//
// 累積額は実行ごとに0から始まり、イベント間でリセットしない。
// 各イベントのコストには、それまでに処理したイベントの予約済み額も含まれる。
// 保存に失敗した時点で残りのイベントは処理しない（保存済みのものは戻さない）。
func (s *CostService) RecalculateCosts(ctx context.Context) (result *CostRecalculationResult, err error) {
	done := track(s.metrics, "recalculate_costs")
	defer func() {
		done(err)
		s.recordRun(result, err)
	}()

	events, err := s.eventRepo.FindByParticipant(ctx, s.selector)
	if err != nil {
		return nil, fmt.Errorf("再計算対象のイベント取得に失敗しました: %w", err)
	}

	result = &CostRecalculationResult{}
	var sum float64
	for _, e := range events {
		for _, l := range e.Logistics {
			if l.Reserved {
				sum += l.LineTotal()
			}
		}
		e.Cost = sum

		if err := s.eventRepo.UpdateCost(ctx, e.ID, sum); err != nil {
			return result, fmt.Errorf("イベント(id=%d)のコスト保存に失敗しました: %w", e.ID, err)
		}
		result.Events++
		result.Total = sum

		logger.Info("イベントのコストを更新",
			zap.Int64("event_id", e.ID),
			zap.String("description", e.Description),
			zap.Float64("cost", sum),
		)
	}
	return result, nil
}

func (s *CostService) recordRun(result *CostRecalculationResult, err error) {
	if s.metrics == nil {
		return
	}
	if result != nil {
		s.metrics.CostRecalculationEvents.Add(float64(result.Events))
		s.metrics.LastCostRecalculationTotal.Set(result.Total)
	}
	if err != nil {
		s.metrics.CostRecalculationRuns.WithLabelValues("error").Inc()
		return
	}
	s.metrics.CostRecalculationRuns.WithLabelValues("success").Inc()
}
