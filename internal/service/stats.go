package service

import (
	"context"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

type statsService struct {
	repo StatsStore
}

func NewStatsService(repo StatsStore) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Summary(ctx context.Context, req domain.StatsRequest) (*domain.StatsSummary, error) {
	hours := req.Hours
	if hours == 0 {
		hours = 24
	}
	return s.repo.Summary(ctx, hours)
}
