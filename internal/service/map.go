package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/internal/geo"
	"github.com/Fouss011/ayii-ratp/pkg/e"
)

const (
	showAllCap      = 2000
	recentCap       = 80
	cacheRefreshTTL = 60 * time.Second
)

type mapService struct {
	outages   OutageStore
	incidents IncidentStore
	reports   ReportStore
	cache     IncidentCacheService
	logger    *slog.Logger
	clock     clockwork.Clock
}

func NewMapService(
	outages OutageStore,
	incidents IncidentStore,
	reports ReportStore,
	cache IncidentCacheService,
	logger *slog.Logger,
	clock clockwork.Clock,
) MapService {
	return &mapService{
		outages:   outages,
		incidents: incidents,
		reports:   reports,
		cache:     cache,
		logger:    logger,
		clock:     clock,
	}
}

// Nearby assembles the map view. The read path degrades instead of failing:
// each section that cannot be loaded comes back empty, with incidents falling
// back to the cache first.
func (s *mapService) Nearby(ctx context.Context, req domain.NearbyRequest) (*domain.NearbyView, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, e.ErrInvalidCoordinates
	}
	radiusM := req.RadiusKM * 1000

	view := &domain.NearbyView{
		Outages:       []domain.Outage{},
		Incidents:     []domain.Incident{},
		RecentReports: []domain.Report{},
		ServerNow:     s.clock.Now().UTC(),
	}

	outages, err := s.loadOutages(ctx, req, radiusM)
	if err != nil {
		s.logger.Error("outage load failed, serving empty", slog.Any("error", err))
	} else {
		view.Outages = outages
	}

	view.Incidents = s.loadIncidents(ctx, req, radiusM)

	reports, err := s.reports.RecentNearby(ctx, req.Lat, req.Lng, radiusM, recentCap)
	if err != nil {
		s.logger.Error("recent reports load failed, serving empty", slog.Any("error", err))
	} else {
		view.RecentReports = reports
	}

	return view, nil
}

func (s *mapService) loadOutages(ctx context.Context, req domain.NearbyRequest, radiusM float64) ([]domain.Outage, error) {
	if req.ShowAll {
		return s.outages.ActiveAll(ctx, showAllCap)
	}
	return s.outages.Nearby(ctx, req.Lat, req.Lng, radiusM)
}

func (s *mapService) loadIncidents(ctx context.Context, req domain.NearbyRequest, radiusM float64) []domain.Incident {
	var (
		incidents []domain.Incident
		err       error
	)
	if req.ShowAll {
		incidents, err = s.incidents.ActiveAll(ctx, showAllCap)
	} else {
		incidents, err = s.incidents.ActiveNearby(ctx, req.Lat, req.Lng, radiusM)
	}
	if err == nil {
		if req.ShowAll {
			if cerr := s.cache.SetActive(ctx, incidents, cacheRefreshTTL); cerr != nil {
				s.logger.Warn("incident cache refresh failed", slog.Any("error", cerr))
			}
		}
		if incidents == nil {
			incidents = []domain.Incident{}
		}
		return incidents
	}

	s.logger.Error("incident load failed, trying cache", slog.Any("error", err))
	cached, cerr := s.cache.GetActive(ctx)
	if cerr != nil {
		s.logger.Error("incident cache fallback failed, serving empty", slog.Any("error", cerr))
		return []domain.Incident{}
	}
	if !req.ShowAll {
		cached = filterIncidentsNearby(cached, req.Lat, req.Lng, radiusM)
	}
	return cached
}

func filterIncidentsNearby(incidents []domain.Incident, lat, lng, radiusM float64) []domain.Incident {
	origin := geo.Point{Lat: lat, Lng: lng}
	out := make([]domain.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if geo.WithinRadius(origin, geo.Point{Lat: inc.Lat, Lng: inc.Lng}, radiusM) {
			out = append(out, inc)
		}
	}
	return out
}
