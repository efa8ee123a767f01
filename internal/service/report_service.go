package service

import (
	"context"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

func (s *Service) Submit(ctx context.Context, req domain.SubmitReportRequest) (*domain.SubmitReportResponse, error) {
	return s.ReportService.Submit(ctx, req)
}
