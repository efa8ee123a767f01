package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ReportStore is the slice of report persistence the use cases need.
type ReportStore interface {
	Insert(ctx context.Context, report *domain.Report) error
	RecentNearby(ctx context.Context, lat, lng, radiusM float64, limit int) ([]domain.Report, error)
	OccurrencePoints(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64, since time.Time) ([]domain.ReportPoint, error)
}

type IncidentStore interface {
	UpsertOccurrence(ctx context.Context, kind domain.Kind, lat, lng, mergeM float64, now time.Time) (uuid.UUID, bool, error)
	ClearNearest(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64, now time.Time) (*uuid.UUID, error)
	ExpireTTL(ctx context.Context, now time.Time, ttl map[domain.Kind]time.Duration, def time.Duration) (int64, error)
	ActiveNearby(ctx context.Context, lat, lng, radiusM float64) ([]domain.Incident, error)
	ActiveAll(ctx context.Context, limit int) ([]domain.Incident, error)
}

type OutageStore interface {
	CloseNearestRestored(ctx context.Context, kind domain.Kind, lat, lng float64, searchM, factor, hardCapM float64, now time.Time) (*uuid.UUID, error)
	ExpireStale(ctx context.Context, now time.Time, window time.Duration, factor float64) (int64, error)
	NearestActive(ctx context.Context, kind domain.Kind, lat, lng, withinM float64) (*uuid.UUID, error)
	Nearby(ctx context.Context, lat, lng, radiusM float64) ([]domain.Outage, error)
	ActiveAll(ctx context.Context, limit int) ([]domain.Outage, error)
	Create(ctx context.Context, outage *domain.Outage) error
}

type AckStore interface {
	Insert(ctx context.Context, ack *domain.Ack) error
	PointsByKind(ctx context.Context, kind domain.Kind, since time.Time) ([]domain.Ack, error)
}

type StatsStore interface {
	Summary(ctx context.Context, hours int) (*domain.StatsSummary, error)
}

type AdminStore interface {
	SeedIncident(ctx context.Context, kind domain.Kind, lat, lng float64, now time.Time) (uuid.UUID, error)
	ReopenNearestIncident(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64) (*uuid.UUID, error)
	ReopenNearestOutage(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64) (*uuid.UUID, error)
	PurgeOldReports(ctx context.Context, olderThan time.Time) (int64, error)
	WipeAll(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	ExportReports(ctx context.Context, from, to time.Time, limit int) ([]domain.Report, error)
}

type IncidentCacheService interface {
	GetActive(ctx context.Context) ([]domain.Incident, error)
	SetActive(ctx context.Context, incidents []domain.Incident, ttl time.Duration) error
}

// ZoneQueue buffers flagged alert zones for the webhook sender.
type ZoneQueue interface {
	Enqueue(ctx context.Context, zone domain.AlertZone) error
}

// ReportPublisher is the optional report firehose. A disabled publisher still
// satisfies the interface and drops everything.
type ReportPublisher interface {
	Publish(ctx context.Context, report *domain.Report) error
	Enabled() bool
}

// Use cases exposed to the HTTP layer and the workers.

type ReportService interface {
	Submit(ctx context.Context, req domain.SubmitReportRequest) (*domain.SubmitReportResponse, error)
}

type MapService interface {
	Nearby(ctx context.Context, req domain.NearbyRequest) (*domain.NearbyView, error)
}

type AlertService interface {
	Zones(ctx context.Context, req domain.AlertZonesRequest) ([]domain.AlertZone, error)
	Acknowledge(ctx context.Context, req domain.AckRequest) (uuid.UUID, error)
}

type SweepService interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type AdminService interface {
	Seed(ctx context.Context, req domain.SeedEntityRequest) (uuid.UUID, error)
	ReopenNearest(ctx context.Context, req domain.NearEntityRequest) (*uuid.UUID, error)
	PurgeReports(ctx context.Context, olderThanHours int) (int64, error)
	Wipe(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	ExportReports(ctx context.Context, from, to time.Time, limit int) ([]domain.Report, error)
}

type StatsService interface {
	Summary(ctx context.Context, req domain.StatsRequest) (*domain.StatsSummary, error)
}

type Service struct {
	ReportService ReportService
	MapService    MapService
	AlertService  AlertService
	SweepService  SweepService
	AdminService  AdminService
	StatsService  StatsService
}

func NewService(
	reportService ReportService,
	mapService MapService,
	alertService AlertService,
	sweepService SweepService,
	adminService AdminService,
	statsService StatsService,
) *Service {
	return &Service{
		ReportService: reportService,
		MapService:    mapService,
		AlertService:  alertService,
		SweepService:  sweepService,
		AdminService:  adminService,
		StatsService:  statsService,
	}
}
