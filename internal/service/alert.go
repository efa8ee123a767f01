package service

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Fouss011/ayii-ratp/internal/config"
	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/internal/geo"
	"github.com/Fouss011/ayii-ratp/internal/observability"
	"github.com/Fouss011/ayii-ratp/pkg/e"
)

// metersPerDegree approximates one degree of latitude. Good enough for cell
// sizing at city scale; the centroid still comes from the raw points.
const metersPerDegree = 111000.0

type alertService struct {
	reports ReportStore
	acks    AckStore
	queue   ZoneQueue
	metrics *observability.Metrics
	logger  *slog.Logger
	clock   clockwork.Clock
	cfg     config.AlertConfig
}

func NewAlertService(
	reports ReportStore,
	acks AckStore,
	queue ZoneQueue,
	metrics *observability.Metrics,
	logger *slog.Logger,
	clock clockwork.Clock,
	cfg config.AlertConfig,
) AlertService {
	return &alertService{
		reports: reports,
		acks:    acks,
		queue:   queue,
		metrics: metrics,
		logger:  logger,
		clock:   clock,
		cfg:     cfg,
	}
}

// Zones flags grid cells holding enough recent same-kind occurrence reports,
// skipping any cell a responder already acknowledged nearby. Queueing the
// flagged zones for webhooks is best effort.
func (s *alertService) Zones(ctx context.Context, req domain.AlertZonesRequest) ([]domain.AlertZone, error) {
	if !req.Kind.Valid() {
		return nil, e.ErrUnknownKind
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, e.ErrInvalidCoordinates
	}

	windowHours := req.WindowHours
	if windowHours <= 0 {
		windowHours = s.cfg.WindowHours
	}
	minCount := req.MinCount
	if minCount <= 0 {
		minCount = s.cfg.MinReports
	}
	cellM := req.CellMeters
	if cellM <= 0 {
		cellM = s.cfg.CellMeters
	}

	now := s.clock.Now().UTC()
	since := now.Add(-time.Duration(windowHours) * time.Hour)

	points, err := s.reports.OccurrencePoints(ctx, req.Kind, req.Lat, req.Lng, req.RadiusKM*1000, since)
	if err != nil {
		s.logger.Error("occurrence points load failed", slog.Any("error", err))
		return nil, err
	}

	zones := clusterPoints(req.Kind, points, float64(cellM), minCount)

	acks, err := s.acks.PointsByKind(ctx, req.Kind, since)
	if err != nil {
		s.logger.Warn("ack load failed, skipping suppression", slog.Any("error", err))
	} else {
		zones = suppressAcknowledged(zones, acks, float64(cellM))
	}

	sort.SliceStable(zones, func(i, j int) bool { return zones[i].Count > zones[j].Count })
	if len(zones) > s.cfg.MaxZones {
		zones = zones[:s.cfg.MaxZones]
	}

	for _, z := range zones {
		if err := s.queue.Enqueue(ctx, z); err != nil {
			s.logger.Warn("zone enqueue failed", slog.Any("error", err))
		}
	}

	s.metrics.AlertZonesFound.Set(float64(len(zones)))
	s.logger.Info("alert zones computed",
		slog.String("kind", string(req.Kind)),
		slog.Int("points", len(points)),
		slog.Int("zones", len(zones)))
	return zones, nil
}

func (s *alertService) Acknowledge(ctx context.Context, req domain.AckRequest) (uuid.UUID, error) {
	if !req.Kind.Valid() {
		return uuid.Nil, e.ErrUnknownKind
	}
	ack := &domain.Ack{
		ID:        uuid.New(),
		Kind:      req.Kind,
		Lat:       req.Lat,
		Lng:       req.Lng,
		UserID:    req.UserID,
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.acks.Insert(ctx, ack); err != nil {
		return uuid.Nil, err
	}
	return ack.ID, nil
}

type cellKey struct {
	row, col int
}

// clusterPoints snaps every point to a square grid of cellM-sized cells. A
// cell reaching minCount becomes a zone centered on the mean of its raw
// points, not the cell midpoint.
func clusterPoints(kind domain.Kind, points []domain.ReportPoint, cellM float64, minCount int) []domain.AlertZone {
	if len(points) == 0 {
		return []domain.AlertZone{}
	}
	cellDeg := cellM / metersPerDegree

	type acc struct {
		sumLat, sumLng float64
		count          int
	}
	cells := make(map[cellKey]*acc)
	for _, p := range points {
		key := cellKey{
			row: int(math.Floor(p.Lat / cellDeg)),
			col: int(math.Floor(p.Lng / cellDeg)),
		}
		a, ok := cells[key]
		if !ok {
			a = &acc{}
			cells[key] = a
		}
		a.sumLat += p.Lat
		a.sumLng += p.Lng
		a.count++
	}

	zones := make([]domain.AlertZone, 0, len(cells))
	for _, a := range cells {
		if a.count < minCount {
			continue
		}
		zones = append(zones, domain.AlertZone{
			Kind:    kind,
			Lat:     a.sumLat / float64(a.count),
			Lng:     a.sumLng / float64(a.count),
			RadiusM: int(cellM),
			Count:   a.count,
		})
	}
	return zones
}

func suppressAcknowledged(zones []domain.AlertZone, acks []domain.Ack, cellM float64) []domain.AlertZone {
	if len(acks) == 0 {
		return zones
	}
	out := zones[:0]
	for _, z := range zones {
		center := geo.Point{Lat: z.Lat, Lng: z.Lng}
		claimed := false
		for _, a := range acks {
			if geo.WithinRadius(center, geo.Point{Lat: a.Lat, Lng: a.Lng}, cellM) {
				claimed = true
				break
			}
		}
		if !claimed {
			out = append(out, z)
		}
	}
	return out
}
