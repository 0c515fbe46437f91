package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-logistics/internal/api"
	"github.com/sanosuguru/go-event-logistics/internal/api/handler"
	"github.com/sanosuguru/go-event-logistics/internal/api/middleware"
	"github.com/sanosuguru/go-event-logistics/internal/application"
	"github.com/sanosuguru/go-event-logistics/internal/config"
	"github.com/sanosuguru/go-event-logistics/internal/domain/event"
	"github.com/sanosuguru/go-event-logistics/internal/domain/logistics"
	"github.com/sanosuguru/go-event-logistics/internal/domain/participant"
	"github.com/sanosuguru/go-event-logistics/internal/infrastructure/memory"
	"github.com/sanosuguru/go-event-logistics/internal/infrastructure/postgres"
	redisinfra "github.com/sanosuguru/go-event-logistics/internal/infrastructure/redis"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/logger"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-logistics/internal/worker"
)

// repositories はストレージドライバーごとのリポジトリ実装
type repositories struct {
	participants participant.Repository
	events       event.Repository
	logistics    logistics.Repository
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Env, cfg.Log.Level)
	defer logger.Sync()

	m := metrics.Init()

	var healthChecks []handler.HealthCheck

	// ストレージ
	var repos repositories
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		repos = repositories{
			participants: memory.NewParticipantRepository(store),
			events:       memory.NewEventRepository(store),
			logistics:    memory.NewLogisticsRepository(store),
		}
		logger.Warn("インメモリストレージで起動します（再起動でデータは消えます）")
	case config.StorageDriverPostgres:
		db := connectPostgres(&cfg.Database)
		defer db.Close()
		repos = repositories{
			participants: postgres.NewParticipantRepository(db),
			events:       postgres.NewEventRepository(db),
			logistics:    postgres.NewLogisticsRepository(db),
		}
		healthChecks = append(healthChecks, handler.HealthCheck{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return postgres.Ping(ctx, db) },
		})
	default:
		logger.Fatal("不明なストレージドライバー", zap.String("driver", cfg.Storage.Driver))
	}

	// サービス
	participantService := application.NewParticipantService(repos.participants, m)
	associationService := application.NewAssociationService(repos.participants, repos.events, m)
	logisticsService := application.NewLogisticsService(repos.events, repos.logistics, m)

	role, err := participant.ParseRole(cfg.CostJob.Role)
	if err != nil {
		logger.Fatal("COST_JOB_ROLE が不正です", zap.String("role", cfg.CostJob.Role), zap.Error(err))
	}
	costService := application.NewCostService(repos.events, event.ParticipantSelector{
		Surname: cfg.CostJob.Surname,
		Name:    cfg.CostJob.Name,
		Role:    role,
	}, m)

	// コスト再計算ワーカー（Redisがあればレプリカ間でロックする）
	workerOpts := []worker.Option{worker.WithMetrics(m)}
	if cfg.Redis.Enabled {
		redisClient, err := redisinfra.NewClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Redis接続失敗", zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
		}
		defer redisClient.Close()
		logger.Info("Redis接続成功", zap.String("addr", cfg.Redis.Addr()))

		workerOpts = append(workerOpts, worker.WithLock(redisinfra.NewLockManager(redisClient), cfg.CostJob.LockTTL))
		healthChecks = append(healthChecks, redisHealthCheck(redisClient))
	}
	costWorker := worker.NewCostRecalculationWorker(costService, cfg.CostJob.Interval, workerOpts...)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	if cfg.CostJob.Enabled {
		go costWorker.Start(workerCtx)
	}

	// HTTP
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	middleware.SetupMiddleware(e, m)

	handler.RegisterRoutes(e, &handler.Handlers{
		Health:      handler.NewHealthHandler(healthChecks...),
		Participant: handler.NewParticipantHandler(participantService),
		Event:       handler.NewEventHandler(associationService),
		Logistics:   handler.NewLogisticsHandler(logisticsService),
		Job:         handler.NewJobHandler(costWorker),
	})
	e.GET(middleware.MetricsPath, echo.WrapHandler(promhttp.Handler()), middleware.MetricsBasicAuth(cfg.Metrics))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("サーバー起動",
			zap.String("port", cfg.Server.Port),
			zap.String("storage", cfg.Storage.Driver),
			zap.Bool("cost_job", cfg.CostJob.Enabled),
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	if cfg.CostJob.Enabled {
		costWorker.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("サーバーシャットダウンエラー", zap.Error(err))
		return
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}

// connectPostgres はDBに接続してマイグレーションを適用する
func connectPostgres(cfg *config.DatabaseConfig) *sqlx.DB {
	db, err := postgres.NewConnection(cfg)
	if err != nil {
		logger.Fatal("DB接続失敗", zap.String("host", cfg.Host), zap.Error(err))
	}
	logger.Info("DB接続成功", zap.String("host", cfg.Host), zap.String("db", cfg.DBName))

	if err := postgres.RunMigrations(db.DB, cfg.MigrationsPath); err != nil {
		db.Close()
		logger.Fatal("マイグレーション失敗", zap.String("path", cfg.MigrationsPath), zap.Error(err))
	}
	return db
}

func redisHealthCheck(client *goredis.Client) handler.HealthCheck {
	return handler.HealthCheck{
		Name:  "redis",
		Check: func(ctx context.Context) error { return redisinfra.Ping(ctx, client) },
	}
}
