package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-logistics/internal/application"
	"github.com/sanosuguru/go-event-logistics/internal/domain/lock"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/logger"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/metrics"
)

// CostRecalculationLockKey は複数レプリカで共有するロックキー
const CostRecalculationLockKey = "jobs:cost-recalculation"

// CostRecalculator はイベントのコストを再計算するインターフェース
type CostRecalculator interface {
	RecalculateCosts(ctx context.Context) (*application.CostRecalculationResult, error)
}

// CostRecalculationWorker はコスト再計算を一定間隔で実行するワーカー
// 起動直後に1回実行し、その後は interval ごとに実行する。
type CostRecalculationWorker struct {
	costService CostRecalculator
	interval    time.Duration
	locks       lock.Manager
	lockTTL     time.Duration
	metrics     *metrics.Metrics
	stopCh      chan struct{}
	doneCh      chan struct{}
	stopOnce    sync.Once
}

// Option はワーカーの任意設定
type Option func(*CostRecalculationWorker)

// WithLock は実行前に分散ロックを取得するようにする
func WithLock(m lock.Manager, ttl time.Duration) Option {
	return func(w *CostRecalculationWorker) {
		w.locks = m
		w.lockTTL = ttl
	}
}

// WithMetrics はロック競合でスキップした回数を記録するようにする
func WithMetrics(m *metrics.Metrics) Option {
	return func(w *CostRecalculationWorker) {
		w.metrics = m
	}
}

// NewCostRecalculationWorker は新しいワーカーを作成
func NewCostRecalculationWorker(cs CostRecalculator, interval time.Duration, opts ...Option) *CostRecalculationWorker {
	w := &CostRecalculationWorker{
		costService: cs,
		interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start はワーカーを開始。ctx のキャンセルか Stop で戻る
func (w *CostRecalculationWorker) Start(ctx context.Context) {
	logger.Info("コスト再計算ワーカー開始",
		zap.Duration("interval", w.interval),
		zap.Bool("distributed_lock", w.locks != nil),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.doneCh)

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("コスト再計算ワーカー停止（コンテキストキャンセル）")
			return
		case <-w.stopCh:
			logger.Info("コスト再計算ワーカー停止（シグナル受信）")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

// Stop はワーカーを停止し、実行中の再計算が終わるまで待つ
func (w *CostRecalculationWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	<-w.doneCh
}

// RunOnce は再計算を1回実行する
// ロックを他のレプリカが保持している場合は lock.ErrNotAcquired を返す
func (w *CostRecalculationWorker) RunOnce(ctx context.Context) (*application.CostRecalculationResult, error) {
	if w.locks == nil {
		return w.costService.RecalculateCosts(ctx)
	}

	l, err := w.locks.Acquire(ctx, CostRecalculationLockKey, w.lockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) && w.metrics != nil {
			w.metrics.CostRecalculationRuns.WithLabelValues("skipped").Inc()
		}
		return nil, err
	}
	defer func() {
		if err := l.Release(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("コスト再計算ロックの解放に失敗", zap.Error(err))
		}
	}()

	result, err := w.costService.RecalculateCosts(ctx)
	if err != nil {
		return result, fmt.Errorf("コスト再計算に失敗: %w", err)
	}
	return result, nil
}

func (w *CostRecalculationWorker) tick(ctx context.Context) {
	log := logger.Get()
	log.Debug("コスト再計算開始")

	result, err := w.RunOnce(ctx)
	switch {
	case errors.Is(err, lock.ErrNotAcquired):
		log.Debug("他のインスタンスが実行中のためスキップ")
	case err != nil:
		fields := []zap.Field{zap.Error(err)}
		if result != nil {
			fields = append(fields, zap.Int("saved_events", result.Events))
		}
		log.Error("コスト再計算失敗", fields...)
	case result.Events > 0:
		log.Info("コスト再計算完了",
			zap.Int("events", result.Events),
			zap.Float64("total", result.Total),
		)
	default:
		log.Debug("再計算対象のイベントなし")
	}
}
