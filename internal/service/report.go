package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Fouss011/ayii-ratp/internal/config"
	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/internal/observability"
	"github.com/Fouss011/ayii-ratp/pkg/e"
)

type reportService struct {
	reports   ReportStore
	incidents IncidentStore
	outages   OutageStore
	firehose  ReportPublisher
	metrics   *observability.Metrics
	logger    *slog.Logger
	clock     clockwork.Clock
	cfg       config.AggregationConfig
}

func NewReportService(
	reports ReportStore,
	incidents IncidentStore,
	outages OutageStore,
	firehose ReportPublisher,
	metrics *observability.Metrics,
	logger *slog.Logger,
	clock clockwork.Clock,
	cfg config.AggregationConfig,
) ReportService {
	return &reportService{
		reports:   reports,
		incidents: incidents,
		outages:   outages,
		firehose:  firehose,
		metrics:   metrics,
		logger:    logger,
		clock:     clock,
		cfg:       cfg,
	}
}

// Submit records the report, then runs the aggregation side effect its signal
// implies. The report row is the source of truth: once it is committed, an
// aggregation failure is surfaced in the outcome instead of failing the call.
func (s *reportService) Submit(ctx context.Context, req domain.SubmitReportRequest) (*domain.SubmitReportResponse, error) {
	if !req.Kind.Valid() {
		return nil, e.ErrUnknownKind
	}
	if !req.Signal.Valid() {
		return nil, e.ErrUnknownSignal
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, e.ErrInvalidCoordinates
	}

	now := s.clock.Now().UTC()
	report := &domain.Report{
		ID:        uuid.New(),
		Kind:      req.Kind,
		Signal:    req.Signal,
		Lat:       req.Lat,
		Lng:       req.Lng,
		AccuracyM: req.AccuracyM,
		Note:      req.Note,
		MediaRef:  req.MediaRef,
		UserID:    req.UserID,
		DeviceID:  req.DeviceID,
		CreatedAt: now,
	}

	if err := s.reports.Insert(ctx, report); err != nil {
		s.logger.Error("report insert failed",
			slog.String("kind", string(req.Kind)),
			slog.Any("error", err))
		return nil, err
	}
	s.metrics.ReportsSubmitted.WithLabelValues(string(req.Kind), string(req.Signal)).Inc()

	if s.firehose.Enabled() {
		if err := s.firehose.Publish(ctx, report); err != nil {
			s.logger.Warn("firehose publish failed", slog.Any("error", err))
		}
	}

	entityID, outcome := s.aggregate(ctx, report, now)
	if outcome == domain.AggregationFailed {
		s.metrics.AggregationFails.Inc()
	}

	return &domain.SubmitReportResponse{
		ID:          report.ID,
		EntityID:    entityID,
		Aggregation: outcome,
	}, nil
}

func (s *reportService) aggregate(ctx context.Context, r *domain.Report, now time.Time) (*uuid.UUID, domain.AggregationOutcome) {
	switch {
	case r.Signal == domain.SignalCut && r.Kind.IsIncident():
		id, merged, err := s.incidents.UpsertOccurrence(ctx, r.Kind, r.Lat, r.Lng, s.cfg.MergeRadiusM, now)
		if err != nil {
			s.logger.Error("incident upsert failed",
				slog.String("kind", string(r.Kind)),
				slog.Any("error", err))
			return nil, domain.AggregationFailed
		}
		if merged {
			s.metrics.IncidentsMerged.Inc()
		} else {
			s.metrics.IncidentsCreated.Inc()
		}
		s.logger.Info("occurrence aggregated",
			slog.String("kind", string(r.Kind)),
			slog.String("incident_id", id.String()),
			slog.Bool("merged", merged))
		return &id, domain.AggregationOK

	case r.Signal == domain.SignalCut && r.Kind.IsOutage():
		return s.aggregateOutageCut(ctx, r, now)

	case r.Signal == domain.SignalRestored && r.Kind.IsIncident():
		id, err := s.incidents.ClearNearest(ctx, r.Kind, r.Lat, r.Lng, s.cfg.IncidentCloseM, now)
		if err != nil {
			s.logger.Error("incident clear failed", slog.Any("error", err))
			return nil, domain.AggregationFailed
		}
		if id == nil {
			return nil, domain.AggregationNone
		}
		s.metrics.EntitiesClosed.WithLabelValues("incident", "resolution").Inc()
		return id, domain.AggregationOK

	default: // restored + outage
		id, err := s.outages.CloseNearestRestored(ctx, r.Kind, r.Lat, r.Lng,
			s.cfg.CloseSearchM, s.cfg.CloseFactor, s.cfg.CloseHardCapM, now)
		if err != nil {
			s.logger.Error("outage close failed", slog.Any("error", err))
			return nil, domain.AggregationFailed
		}
		if id == nil {
			s.logger.Info("restored signal matched no outage",
				slog.String("kind", string(r.Kind)))
			return nil, domain.AggregationNone
		}
		s.metrics.EntitiesClosed.WithLabelValues("outage", "resolution").Inc()
		return id, domain.AggregationOK
	}
}

// aggregateOutageCut attaches the report to the nearest active same-kind
// outage within the merge radius, or opens a new one with the default radius.
func (s *reportService) aggregateOutageCut(ctx context.Context, r *domain.Report, now time.Time) (*uuid.UUID, domain.AggregationOutcome) {
	id, err := s.outages.NearestActive(ctx, r.Kind, r.Lat, r.Lng, s.cfg.MergeRadiusM)
	if err != nil {
		s.logger.Error("outage lookup failed", slog.Any("error", err))
		return nil, domain.AggregationFailed
	}
	if id != nil {
		return id, domain.AggregationOK
	}

	outage := &domain.Outage{
		ID:        uuid.New(),
		Kind:      r.Kind,
		Status:    domain.OutageOngoing,
		Lat:       r.Lat,
		Lng:       r.Lng,
		RadiusM:   s.cfg.DefaultOutageRadiusM,
		StartedAt: now,
	}
	if err := s.outages.Create(ctx, outage); err != nil {
		s.logger.Error("outage create failed", slog.Any("error", err))
		return nil, domain.AggregationFailed
	}
	s.logger.Info("outage opened",
		slog.String("kind", string(r.Kind)),
		slog.String("outage_id", outage.ID.String()))
	return &outage.ID, domain.AggregationOK
}
