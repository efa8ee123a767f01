package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"

	"github.com/Fouss011/ayii-ratp/internal/config"
	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/internal/observability"
	"github.com/Fouss011/ayii-ratp/internal/service"
	mock_service "github.com/Fouss011/ayii-ratp/internal/service/mocks"
)

func testAlertConfig() config.AlertConfig {
	return config.AlertConfig{
		WindowHours: 3,
		MinReports:  3,
		CellMeters:  150,
		MaxZones:    2, // small cap so the test can exercise it
	}
}

func occurrences(lat, lng float64, n int) []domain.ReportPoint {
	pts := make([]domain.ReportPoint, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, domain.ReportPoint{Kind: domain.KindUrine, Lat: lat, Lng: lng})
	}
	return pts
}

func TestZones_OrdersByCountAndCaps(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportStore(ctrl)
	acks := mock_service.NewMockAckStore(ctrl)
	queue := mock_service.NewMockZoneQueue(ctrl)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	// three bursts far apart: counts 3, 5 and 4
	var pts []domain.ReportPoint
	pts = append(pts, occurrences(48.80, 2.30, 3)...)
	pts = append(pts, occurrences(48.85, 2.35, 5)...)
	pts = append(pts, occurrences(48.90, 2.40, 4)...)

	wantSince := clock.Now().UTC().Add(-3 * time.Hour)
	reports.EXPECT().
		OccurrencePoints(gomock.Any(), domain.KindUrine, 48.85, 2.35, 5000.0, wantSince).
		Return(pts, nil)
	acks.EXPECT().
		PointsByKind(gomock.Any(), domain.KindUrine, wantSince).
		Return(nil, nil)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	svc := service.NewAlertService(reports, acks, queue,
		observability.NewMetricsForTesting(), testLogger(), clock, testAlertConfig())

	zones, err := svc.Zones(context.Background(), domain.AlertZonesRequest{
		Kind: domain.KindUrine, Lat: 48.85, Lng: 2.35, RadiusKM: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 2 {
		t.Fatalf("want cap of 2 zones, got %d", len(zones))
	}
	if zones[0].Count != 5 || zones[1].Count != 4 {
		t.Fatalf("want counts [5 4], got [%d %d]", zones[0].Count, zones[1].Count)
	}
}

func TestZones_AckSuppressesCell(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportStore(ctrl)
	acks := mock_service.NewMockAckStore(ctrl)
	queue := mock_service.NewMockZoneQueue(ctrl)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	reports.EXPECT().
		OccurrencePoints(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(occurrences(48.85, 2.35, 4), nil)
	acks.EXPECT().
		PointsByKind(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Ack{{Kind: domain.KindUrine, Lat: 48.85, Lng: 2.35}}, nil)

	svc := service.NewAlertService(reports, acks, queue,
		observability.NewMetricsForTesting(), testLogger(), clock, testAlertConfig())

	zones, err := svc.Zones(context.Background(), domain.AlertZonesRequest{
		Kind: domain.KindUrine, Lat: 48.85, Lng: 2.35, RadiusKM: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 0 {
		t.Fatalf("acknowledged zone must be suppressed, got %d zones", len(zones))
	}
}

func TestAcknowledge_PersistsClaim(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportStore(ctrl)
	acks := mock_service.NewMockAckStore(ctrl)
	queue := mock_service.NewMockZoneQueue(ctrl)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	var saved *domain.Ack
	acks.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Ack) error {
			saved = a
			return nil
		})

	svc := service.NewAlertService(reports, acks, queue,
		observability.NewMetricsForTesting(), testLogger(), clock, testAlertConfig())

	id, err := svc.Acknowledge(context.Background(), domain.AckRequest{
		Kind: domain.KindSyringe, Lat: 48.85, Lng: 2.35,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.ID != id {
		t.Fatalf("ack not persisted with returned id")
	}
	if !saved.CreatedAt.Equal(clock.Now().UTC()) {
		t.Fatalf("ack timestamp must come from the clock")
	}
}
