package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

type ReportRepository interface {
	Insert(ctx context.Context, report *domain.Report) error
	RecentNearby(ctx context.Context, lat, lng, radiusM float64, limit int) ([]domain.Report, error)
	OccurrencePoints(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64, since time.Time) ([]domain.ReportPoint, error)
}

// IncidentRepository covers incident-class aggregation. UpsertOccurrence and
// ClearNearest run their candidate selection and mutation as one conditional
// statement so concurrent reports cannot double-create or double-attach.
type IncidentRepository interface {
	UpsertOccurrence(ctx context.Context, kind domain.Kind, lat, lng, mergeM float64, now time.Time) (uuid.UUID, bool, error)
	ClearNearest(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64, now time.Time) (*uuid.UUID, error)
	ExpireTTL(ctx context.Context, now time.Time, ttl map[domain.Kind]time.Duration, def time.Duration) (int64, error)
	ActiveNearby(ctx context.Context, lat, lng, radiusM float64) ([]domain.Incident, error)
	ActiveAll(ctx context.Context, limit int) ([]domain.Incident, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
}

type OutageRepository interface {
	CloseNearestRestored(ctx context.Context, kind domain.Kind, lat, lng float64, searchM, factor, hardCapM float64, now time.Time) (*uuid.UUID, error)
	ExpireStale(ctx context.Context, now time.Time, window time.Duration, factor float64) (int64, error)
	NearestActive(ctx context.Context, kind domain.Kind, lat, lng, withinM float64) (*uuid.UUID, error)
	Nearby(ctx context.Context, lat, lng, radiusM float64) ([]domain.Outage, error)
	ActiveAll(ctx context.Context, limit int) ([]domain.Outage, error)
	Create(ctx context.Context, outage *domain.Outage) error
}

type AckRepository interface {
	Insert(ctx context.Context, ack *domain.Ack) error
	PointsByKind(ctx context.Context, kind domain.Kind, since time.Time) ([]domain.Ack, error)
}

type StatsRepository interface {
	Summary(ctx context.Context, hours int) (*domain.StatsSummary, error)
}

// AdminRepository holds the destructive and corrective operations behind the
// admin token: seeding, reopening, purges and resets.
type AdminRepository interface {
	SeedIncident(ctx context.Context, kind domain.Kind, lat, lng float64, now time.Time) (uuid.UUID, error)
	ReopenNearestIncident(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64) (*uuid.UUID, error)
	ReopenNearestOutage(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64) (*uuid.UUID, error)
	PurgeOldReports(ctx context.Context, olderThan time.Time) (int64, error)
	WipeAll(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	ExportReports(ctx context.Context, from, to time.Time, limit int) ([]domain.Report, error)
}
