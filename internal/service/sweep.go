package service

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/Fouss011/ayii-ratp/internal/config"
	"github.com/Fouss011/ayii-ratp/internal/observability"
)

type sweepService struct {
	incidents IncidentStore
	outages   OutageStore
	metrics   *observability.Metrics
	logger    *slog.Logger
	clock     clockwork.Clock
	cfg       config.AggregationConfig
}

func NewSweepService(
	incidents IncidentStore,
	outages OutageStore,
	metrics *observability.Metrics,
	logger *slog.Logger,
	clock clockwork.Clock,
	cfg config.AggregationConfig,
) SweepService {
	return &sweepService{
		incidents: incidents,
		outages:   outages,
		metrics:   metrics,
		logger:    logger,
		clock:     clock,
		cfg:       cfg,
	}
}

// SweepExpired runs both expiry passes against a single timestamp so the
// sweep is deterministic under a fake clock. Each pass is one statement; a
// failed pass does not block the other.
func (s *sweepService) SweepExpired(ctx context.Context) (int64, error) {
	now := s.clock.Now().UTC()
	start := s.clock.Now()

	var total int64
	var firstErr error

	outN, err := s.outages.ExpireStale(ctx, now, s.cfg.OutageStaleWindow, s.cfg.OutageStaleFactor)
	if err != nil {
		s.logger.Error("outage expiry failed", slog.Any("error", err))
		firstErr = err
	} else {
		total += outN
		if outN > 0 {
			s.metrics.EntitiesClosed.WithLabelValues("outage", "expiry").Add(float64(outN))
		}
	}

	incN, err := s.incidents.ExpireTTL(ctx, now, s.cfg.IncidentTTL, s.cfg.IncidentTTLDefault)
	if err != nil {
		s.logger.Error("incident expiry failed", slog.Any("error", err))
		if firstErr == nil {
			firstErr = err
		}
	} else {
		total += incN
		if incN > 0 {
			s.metrics.EntitiesClosed.WithLabelValues("incident", "expiry").Add(float64(incN))
		}
	}

	s.metrics.SweepDuration.Observe(s.clock.Since(start).Seconds())
	if total > 0 {
		s.logger.Info("sweep closed entities",
			slog.Int64("outages", outN),
			slog.Int64("incidents", incN))
	}
	return total, firstErr
}
