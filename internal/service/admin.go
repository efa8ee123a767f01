package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Fouss011/ayii-ratp/internal/config"
	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/pkg/e"
)

const exportCap = 50000

type adminService struct {
	admin   AdminStore
	outages OutageStore
	logger  *slog.Logger
	clock   clockwork.Clock
	cfg     config.AggregationConfig
}

func NewAdminService(
	admin AdminStore,
	outages OutageStore,
	logger *slog.Logger,
	clock clockwork.Clock,
	cfg config.AggregationConfig,
) AdminService {
	return &adminService{
		admin:   admin,
		outages: outages,
		logger:  logger,
		clock:   clock,
		cfg:     cfg,
	}
}

// Seed plants an active entity directly, bypassing report aggregation. Meant
// for demos and manual fixes.
func (s *adminService) Seed(ctx context.Context, req domain.SeedEntityRequest) (uuid.UUID, error) {
	if !req.Kind.Valid() {
		return uuid.Nil, e.ErrUnknownKind
	}
	now := s.clock.Now().UTC()

	if req.Kind.IsIncident() {
		id, err := s.admin.SeedIncident(ctx, req.Kind, req.Lat, req.Lng, now)
		if err != nil {
			return uuid.Nil, err
		}
		s.logger.Info("incident seeded", slog.String("id", id.String()))
		return id, nil
	}

	radius := req.RadiusM
	if radius <= 0 {
		radius = s.cfg.DefaultOutageRadiusM
	}
	outage := &domain.Outage{
		ID:        uuid.New(),
		Kind:      req.Kind,
		Status:    domain.OutageOngoing,
		Lat:       req.Lat,
		Lng:       req.Lng,
		RadiusM:   radius,
		StartedAt: now,
	}
	if err := s.outages.Create(ctx, outage); err != nil {
		return uuid.Nil, err
	}
	s.logger.Info("outage seeded", slog.String("id", outage.ID.String()))
	return outage.ID, nil
}

// ReopenNearest reactivates the closest closed entity of the kind, or returns
// nil when nothing is in range.
func (s *adminService) ReopenNearest(ctx context.Context, req domain.NearEntityRequest) (*uuid.UUID, error) {
	if !req.Kind.Valid() {
		return nil, e.ErrUnknownKind
	}
	radius := req.RadiusM
	if radius <= 0 {
		radius = s.cfg.CloseSearchM
	}
	if req.Kind.IsIncident() {
		return s.admin.ReopenNearestIncident(ctx, req.Kind, req.Lat, req.Lng, radius)
	}
	return s.admin.ReopenNearestOutage(ctx, req.Kind, req.Lat, req.Lng, radius)
}

func (s *adminService) PurgeReports(ctx context.Context, olderThanHours int) (int64, error) {
	if olderThanHours <= 0 {
		return 0, e.ErrInvalidInput
	}
	cutoff := s.clock.Now().UTC().Add(-time.Duration(olderThanHours) * time.Hour)
	n, err := s.admin.PurgeOldReports(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	s.logger.Info("reports purged",
		slog.Int64("deleted", n),
		slog.Int("older_than_hours", olderThanHours))
	return n, nil
}

func (s *adminService) Wipe(ctx context.Context) error {
	s.logger.Warn("wiping all data")
	return s.admin.WipeAll(ctx)
}

func (s *adminService) EnsureSchema(ctx context.Context) error {
	return s.admin.EnsureSchema(ctx)
}

func (s *adminService) ExportReports(ctx context.Context, from, to time.Time, limit int) ([]domain.Report, error) {
	if limit <= 0 || limit > exportCap {
		limit = exportCap
	}
	if to.IsZero() {
		to = s.clock.Now().UTC()
	}
	if !from.Before(to) {
		return nil, e.ErrInvalidInput
	}
	return s.admin.ExportReports(ctx, from, to, limit)
}
