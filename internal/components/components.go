package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Fouss011/ayii-ratp/internal/api"
	"github.com/Fouss011/ayii-ratp/internal/config"
	"github.com/Fouss011/ayii-ratp/internal/observability"
	"github.com/Fouss011/ayii-ratp/internal/redis"
	"github.com/Fouss011/ayii-ratp/internal/service"
	"github.com/Fouss011/ayii-ratp/internal/storage/postgres"
	"github.com/Fouss011/ayii-ratp/internal/stream"
	"github.com/Fouss011/ayii-ratp/internal/workers"
	"github.com/Fouss011/ayii-ratp/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Firehose   *stream.Firehose
	Sweeper    *workers.Sweeper
	WebhookSnd *service.WebhookSender
	Cfg        *config.Config
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	log.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to init postgres", logger.Err(err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	log.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, log)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	incidentCache := redis.NewIncidentCache(redisClient)
	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")
	firehose := stream.NewFirehose(cfg, log)

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	reportSvc := service.NewReportService(
		storage.Reports, storage.Incidents, storage.Outages,
		firehose, metrics, log, clock, cfg.Aggregation)
	mapSvc := service.NewMapService(
		storage.Outages, storage.Incidents, storage.Reports,
		incidentCache, log, clock)
	alertSvc := service.NewAlertService(
		storage.Reports, storage.Acks, alertQueue,
		metrics, log, clock, cfg.Alert)
	sweepSvc := service.NewSweepService(
		storage.Incidents, storage.Outages,
		metrics, log, clock, cfg.Aggregation)
	adminSvc := service.NewAdminService(
		storage.Admin, storage.Outages, log, clock, cfg.Aggregation)
	statsSvc := service.NewStatsService(storage.Stats)

	srv := service.NewService(reportSvc, mapSvc, alertSvc, sweepSvc, adminSvc, statsSvc)

	httpServer := api.NewServer(cfg, log, srv, storage.Pool)
	log.Info("Initialized server")

	var sweeper *workers.Sweeper
	if cfg.Aggregation.SweepEnabled {
		sweeper = workers.NewSweeper(sweepSvc, log, clock, cfg.Aggregation.SweepInterval)
	}

	webhookSnd := service.NewWebhookSender(log, cfg.Webhook, alertQueue)

	return &Components{
		logger:     log,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Firehose:   firehose,
		Sweeper:    sweeper,
		WebhookSnd: webhookSnd,
		Cfg:        cfg,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", logger.Err(err))
		}
	}
	if c.Firehose != nil {
		if err := c.Firehose.Close(); err != nil {
			c.logger.Error("Firehose close failed", logger.Err(err))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
