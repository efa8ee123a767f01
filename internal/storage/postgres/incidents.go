package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/pkg/e"
)

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

// UpsertOccurrence attaches an occurrence report to the nearest active
// incident of the same kind within mergeM meters, or creates a new one.
// Candidate selection and mutation are a single statement, so two concurrent
// reports for the same spot cannot each create an incident. Ties on distance
// break on oldest started_at. Returns (id, merged).
//
// The center stays where the first report put it; later merges only bump
// last_report_at.
func (p *IncidentRepo) UpsertOccurrence(ctx context.Context, kind domain.Kind, lat, lng, mergeM float64, now time.Time) (uuid.UUID, bool, error) {
	const op = "postgres.Incident.UpsertOccurrence"

	if !kind.IsIncident() {
		return uuid.Nil, false, fmt.Errorf("%s: %w", op, e.ErrUnknownKind)
	}

	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		),
		cand AS (
		  SELECT id
		    FROM incidents
		   WHERE kind = $3 AND active = true
		     AND ST_DWithin(center, (SELECT g FROM me), $4)
		   ORDER BY center::geometry <-> (SELECT g::geometry FROM me), started_at ASC
		   LIMIT 1
		),
		upd AS (
		  UPDATE incidents i
		     SET last_report_at = $5
		    FROM cand
		   WHERE i.id = cand.id
		  RETURNING i.id
		),
		ins AS (
		  INSERT INTO incidents (id, kind, center, active, started_at, last_report_at)
		  SELECT $6, $3, (SELECT g FROM me), true, $5, $5
		  WHERE NOT EXISTS (SELECT 1 FROM upd)
		  RETURNING id
		)
		SELECT id, true AS merged FROM upd
		UNION ALL
		SELECT id, false AS merged FROM ins
	`

	newID := uuid.New()

	var id uuid.UUID
	var merged bool
	err := p.pool.QueryRow(ctx, query, lng, lat, kind, mergeM, now, newID).Scan(&id, &merged)
	if err != nil {
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err), slog.String("kind", string(kind)))
		return uuid.Nil, false, e.WrapError(ctx, op, err)
	}

	return id, merged, nil
}

// ClearNearest closes the nearest active incident of the kind within a flat
// radius. Returns nil when nothing qualifies; the resolution report stays
// recorded regardless. ended_at is set once, via COALESCE.
func (p *IncidentRepo) ClearNearest(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64, now time.Time) (*uuid.UUID, error) {
	const op = "postgres.Incident.ClearNearest"

	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		),
		cand AS (
		  SELECT id
		    FROM incidents
		   WHERE kind = $3 AND active = true
		     AND ST_DWithin(center, (SELECT g FROM me), $4)
		   ORDER BY center::geometry <-> (SELECT g::geometry FROM me), started_at ASC
		   LIMIT 1
		)
		UPDATE incidents i
		   SET active = false,
		       ended_at = COALESCE(i.ended_at, $5)
		  FROM cand
		 WHERE i.id = cand.id
		RETURNING i.id
	`

	var id uuid.UUID
	err := p.pool.QueryRow(ctx, query, lng, lat, kind, radiusM, now).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err), slog.String("kind", string(kind)))
		return nil, e.WrapError(ctx, op, err)
	}

	return &id, nil
}

// ExpireTTL closes active incidents that have been silent longer than their
// kind's TTL. One conditional UPDATE over an unnested (kind, ttl) table plus a
// default branch; running it twice back to back closes nothing extra.
func (p *IncidentRepo) ExpireTTL(ctx context.Context, now time.Time, ttl map[domain.Kind]time.Duration, def time.Duration) (int64, error) {
	const op = "postgres.Incident.ExpireTTL"

	kinds := make([]string, 0, len(ttl))
	secs := make([]float64, 0, len(ttl))
	for k, d := range ttl {
		kinds = append(kinds, string(k))
		secs = append(secs, d.Seconds())
	}

	const query = `
		UPDATE incidents i
		   SET active = false,
		       ended_at = COALESCE(i.ended_at, $1)
		 WHERE i.active = true
		   AND $1 - GREATEST(i.last_report_at, i.started_at) > make_interval(secs => COALESCE(
		         (SELECT t.ttl_secs
		            FROM unnest($2::text[], $3::float8[]) AS t(kind, ttl_secs)
		           WHERE t.kind = i.kind),
		         $4::float8))
	`

	cmd, err := p.pool.Exec(ctx, query, now, kinds, secs, def.Seconds())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected(), nil
}

func (p *IncidentRepo) ActiveNearby(ctx context.Context, lat, lng, radiusM float64) ([]domain.Incident, error) {
	const op = "postgres.Incident.ActiveNearby"

	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		)
		SELECT id, kind, active,
		       ST_Y(center::geometry) AS lat,
		       ST_X(center::geometry) AS lng,
		       started_at, last_report_at, ended_at
		  FROM incidents
		 WHERE active = true
		   AND ST_DWithin(center, (SELECT g FROM me), $3)
		 ORDER BY started_at DESC
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, radiusM)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanIncidents(rows, p.logger, op)
}

func (p *IncidentRepo) ActiveAll(ctx context.Context, limit int) ([]domain.Incident, error) {
	const op = "postgres.Incident.ActiveAll"

	if limit <= 0 || limit > 2000 {
		limit = 2000
	}

	const query = `
		SELECT id, kind, active,
		       ST_Y(center::geometry) AS lat,
		       ST_X(center::geometry) AS lng,
		       started_at, last_report_at, ended_at
		  FROM incidents
		 WHERE active = true
		 ORDER BY started_at DESC
		 LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanIncidents(rows, p.logger, op)
}

func (p *IncidentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	const query = `
		SELECT id, kind, active,
		       ST_Y(center::geometry) AS lat,
		       ST_X(center::geometry) AS lng,
		       started_at, last_report_at, ended_at
		  FROM incidents
		 WHERE id = $1
	`

	var inc domain.Incident
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&inc.ID, &inc.Kind, &inc.Active, &inc.Lat, &inc.Lng,
		&inc.StartedAt, &inc.LastReportAt, &inc.EndedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &inc, nil
}

func scanIncidents(rows pgx.Rows, logger *slog.Logger, op string) ([]domain.Incident, error) {
	incidents := make([]domain.Incident, 0, 16)
	for rows.Next() {
		var inc domain.Incident
		if err := rows.Scan(
			&inc.ID, &inc.Kind, &inc.Active, &inc.Lat, &inc.Lng,
			&inc.StartedAt, &inc.LastReportAt, &inc.EndedAt,
		); err != nil {
			logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, err
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}
	return incidents, nil
}
