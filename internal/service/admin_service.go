package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

func (s *Service) Seed(ctx context.Context, req domain.SeedEntityRequest) (uuid.UUID, error) {
	return s.AdminService.Seed(ctx, req)
}

func (s *Service) ReopenNearest(ctx context.Context, req domain.NearEntityRequest) (*uuid.UUID, error) {
	return s.AdminService.ReopenNearest(ctx, req)
}

func (s *Service) PurgeReports(ctx context.Context, olderThanHours int) (int64, error) {
	return s.AdminService.PurgeReports(ctx, olderThanHours)
}

func (s *Service) Wipe(ctx context.Context) error {
	return s.AdminService.Wipe(ctx)
}

func (s *Service) EnsureSchema(ctx context.Context) error {
	return s.AdminService.EnsureSchema(ctx)
}

func (s *Service) ExportReports(ctx context.Context, from, to time.Time, limit int) ([]domain.Report, error) {
	return s.AdminService.ExportReports(ctx, from, to, limit)
}

func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	return s.SweepService.SweepExpired(ctx)
}

func (s *Service) Summary(ctx context.Context, req domain.StatsRequest) (*domain.StatsSummary, error) {
	return s.StatsService.Summary(ctx, req)
}
