package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// HTTPリクエストの総数（method, path, status_code）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPリクエストのレイテンシ（method, path）
	HTTPRequestDuration *prometheus.HistogramVec

	// サービス操作の処理時間（operation, status: success/not_found/invalid/error）
	OperationDuration *prometheus.HistogramVec

	// コスト再計算ジョブの実行回数（status: success, error, skipped）
	CostRecalculationRuns *prometheus.CounterVec

	// コスト再計算で更新したイベント数
	CostRecalculationEvents prometheus.Counter

	// 直近のコスト再計算の累積額
	LastCostRecalculationTotal prometheus.Gauge
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "service_operation_duration_seconds",
				Help:    "Time spent in service operations",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"operation", "status"},
		),
		CostRecalculationRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cost_recalculation_runs_total",
				Help: "Total number of cost recalculation runs",
			},
			[]string{"status"},
		),
		CostRecalculationEvents: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cost_recalculation_events_total",
				Help: "Total number of events whose cost was recalculated",
			},
		),
		LastCostRecalculationTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cost_recalculation_last_total",
				Help: "Accumulated cost at the end of the last recalculation run",
			},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.OperationDuration,
		m.CostRecalculationRuns,
		m.CostRecalculationEvents,
		m.LastCostRecalculationTotal,
	)

	return m
}

// デフォルトのメトリクスインスタンス
var defaultMetrics *Metrics

// Init はデフォルトのメトリクスインスタンスを初期化する
func Init() *Metrics {
	defaultMetrics = New()
	return defaultMetrics
}

// Get はデフォルトのメトリクスインスタンスを返す
func Get() *Metrics {
	return defaultMetrics
}
