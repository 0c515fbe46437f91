package application

import (
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-logistics/internal/pkg/logger"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/metrics"
)

// track は操作の実行時間をログとメトリクスに記録する関数を返す
//
//	done := track(s.metrics, "link_by_participant_id")
//	defer func() { done(err) }()
func track(m *metrics.Metrics, operation string) func(err error) {
	start := time.Now()
	return func(err error) {
		elapsed := time.Since(start)
		status := operationStatus(err)
		logger.Debug("操作実行時間",
			zap.String("operation", operation),
			zap.String("status", status),
			zap.Duration("elapsed", elapsed),
		)
		if m != nil {
			m.OperationDuration.WithLabelValues(operation, status).Observe(elapsed.Seconds())
		}
	}
}

func operationStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsNotFound(err):
		return "not_found"
	case IsValidation(err):
		return "invalid"
	default:
		return "error"
	}
}
