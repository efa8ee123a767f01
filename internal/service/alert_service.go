package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

func (s *Service) Zones(ctx context.Context, req domain.AlertZonesRequest) ([]domain.AlertZone, error) {
	return s.AlertService.Zones(ctx, req)
}

func (s *Service) Acknowledge(ctx context.Context, req domain.AckRequest) (uuid.UUID, error) {
	return s.AlertService.Acknowledge(ctx, req)
}
