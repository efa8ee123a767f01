package service

import (
	"context"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

func (s *Service) Nearby(ctx context.Context, req domain.NearbyRequest) (*domain.NearbyView, error) {
	return s.MapService.Nearby(ctx, req)
}
