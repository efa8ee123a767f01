package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/google/uuid"

	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/internal/service"
	mock_service "github.com/Fouss011/ayii-ratp/internal/service/mocks"
)

type mapFixture struct {
	outages   *mock_service.MockOutageStore
	incidents *mock_service.MockIncidentStore
	reports   *mock_service.MockReportStore
	cache     *mock_service.MockIncidentCacheService
	svc       service.MapService
}

func newMapFixture(ctrl *gomock.Controller) *mapFixture {
	f := &mapFixture{
		outages:   mock_service.NewMockOutageStore(ctrl),
		incidents: mock_service.NewMockIncidentStore(ctrl),
		reports:   mock_service.NewMockReportStore(ctrl),
		cache:     mock_service.NewMockIncidentCacheService(ctrl),
	}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	f.svc = service.NewMapService(f.outages, f.incidents, f.reports, f.cache, testLogger(), clock)
	return f
}

func TestNearby_HappyPath(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMapFixture(ctrl)
	outage := domain.Outage{ID: uuid.New(), Kind: domain.KindPower}
	incident := domain.Incident{ID: uuid.New(), Kind: domain.KindUrine, Active: true}

	f.outages.EXPECT().Nearby(gomock.Any(), 48.85, 2.35, 2000.0).Return([]domain.Outage{outage}, nil)
	f.incidents.EXPECT().ActiveNearby(gomock.Any(), 48.85, 2.35, 2000.0).Return([]domain.Incident{incident}, nil)
	f.reports.EXPECT().RecentNearby(gomock.Any(), 48.85, 2.35, 2000.0, 80).Return([]domain.Report{}, nil)

	view, err := f.svc.Nearby(context.Background(), domain.NearbyRequest{Lat: 48.85, Lng: 2.35, RadiusKM: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Outages) != 1 || len(view.Incidents) != 1 {
		t.Fatalf("want 1 outage and 1 incident, got %d/%d", len(view.Outages), len(view.Incidents))
	}
	if view.ServerNow.IsZero() {
		t.Fatal("server_now missing")
	}
}

func TestNearby_ShowAllRefreshesCache(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMapFixture(ctrl)
	incidents := []domain.Incident{{ID: uuid.New(), Kind: domain.KindFire, Active: true}}

	f.outages.EXPECT().ActiveAll(gomock.Any(), 2000).Return([]domain.Outage{}, nil)
	f.incidents.EXPECT().ActiveAll(gomock.Any(), 2000).Return(incidents, nil)
	f.cache.EXPECT().SetActive(gomock.Any(), incidents, gomock.Any()).Return(nil)
	f.reports.EXPECT().RecentNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 80).Return(nil, nil)

	view, err := f.svc.Nearby(context.Background(), domain.NearbyRequest{Lat: 48.85, Lng: 2.35, RadiusKM: 2, ShowAll: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Incidents) != 1 {
		t.Fatalf("want 1 incident, got %d", len(view.Incidents))
	}
}

func TestNearby_IncidentDBFailureFallsBackToCache(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMapFixture(ctrl)
	near := domain.Incident{ID: uuid.New(), Kind: domain.KindUrine, Active: true, Lat: 48.8501, Lng: 2.3501}
	far := domain.Incident{ID: uuid.New(), Kind: domain.KindUrine, Active: true, Lat: 49.5, Lng: 3.5}

	f.outages.EXPECT().Nearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.incidents.EXPECT().ActiveNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("pg down"))
	f.cache.EXPECT().GetActive(gomock.Any()).Return([]domain.Incident{near, far}, nil)
	f.reports.EXPECT().RecentNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 80).Return(nil, nil)

	view, err := f.svc.Nearby(context.Background(), domain.NearbyRequest{Lat: 48.85, Lng: 2.35, RadiusKM: 2})
	if err != nil {
		t.Fatalf("degraded read must not fail: %v", err)
	}
	if len(view.Incidents) != 1 || view.Incidents[0].ID != near.ID {
		t.Fatalf("want only the nearby cached incident, got %d", len(view.Incidents))
	}
}

func TestNearby_EverythingDownServesEmpty(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMapFixture(ctrl)
	down := errors.New("down")

	f.outages.EXPECT().Nearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, down)
	f.incidents.EXPECT().ActiveNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, down)
	f.cache.EXPECT().GetActive(gomock.Any()).Return(nil, down)
	f.reports.EXPECT().RecentNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 80).Return(nil, down)

	view, err := f.svc.Nearby(context.Background(), domain.NearbyRequest{Lat: 48.85, Lng: 2.35, RadiusKM: 2})
	if err != nil {
		t.Fatalf("degraded read must not fail: %v", err)
	}
	if len(view.Outages) != 0 || len(view.Incidents) != 0 || len(view.RecentReports) != 0 {
		t.Fatal("want empty sections when every source is down")
	}
}
