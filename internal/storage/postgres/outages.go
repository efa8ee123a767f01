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

type OutageRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOutageRepo(pool *pgxpool.Pool, logger *slog.Logger) *OutageRepo {
	return &OutageRepo{pool: pool, logger: logger}
}

// CloseNearestRestored implements the tolerant closure: pick the nearest
// ongoing outage of the kind within searchM, close it only when
// dist <= radius_m*factor OR dist <= hardCapM (the more permissive of the two
// rules wins). Selection and update are one statement; restored_at is set
// once via COALESCE so a closed outage stays closed.
func (p *OutageRepo) CloseNearestRestored(ctx context.Context, kind domain.Kind, lat, lng float64, searchM, factor, hardCapM float64, now time.Time) (*uuid.UUID, error) {
	const op = "postgres.Outage.CloseNearestRestored"

	if !kind.IsOutage() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnknownKind)
	}

	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		),
		cand AS (
		  SELECT id, radius_m,
		         ST_Distance(center, (SELECT g FROM me)) AS dist
		    FROM outages
		   WHERE kind = $3 AND status = 'ongoing'
		     AND ST_DWithin(center, (SELECT g FROM me), $4)
		   ORDER BY center::geometry <-> (SELECT g::geometry FROM me), started_at ASC
		   LIMIT 1
		)
		UPDATE outages o
		   SET status = 'restored',
		       restored_at = COALESCE(o.restored_at, $5)
		  FROM cand
		 WHERE o.id = cand.id
		   AND (cand.dist <= cand.radius_m * $6 OR cand.dist <= $7)
		RETURNING o.id
	`

	var id uuid.UUID
	err := p.pool.QueryRow(ctx, query, lng, lat, kind, searchM, now, factor, hardCapM).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err), slog.String("kind", string(kind)))
		return nil, e.WrapError(ctx, op, err)
	}

	return &id, nil
}

// ExpireStale closes ongoing outages with no corroborating 'cut' report of
// the same kind within radius_m*factor of their center during the window
// ending at now. Not a plain TTL: a steady stream of reports keeps the outage
// open indefinitely.
func (p *OutageRepo) ExpireStale(ctx context.Context, now time.Time, window time.Duration, factor float64) (int64, error) {
	const op = "postgres.Outage.ExpireStale"

	const query = `
		UPDATE outages o
		   SET status = 'restored',
		       restored_at = COALESCE(o.restored_at, $1)
		 WHERE o.status = 'ongoing'
		   AND NOT EXISTS (
		        SELECT 1
		          FROM reports r
		         WHERE r.kind = o.kind
		           AND r.signal = 'cut'
		           AND r.created_at >= $1 - make_interval(secs => $2)
		           AND r.created_at <= $1
		           AND ST_DWithin(r.geom, o.center, o.radius_m * $3)
		   )
	`

	cmd, err := p.pool.Exec(ctx, query, now, window.Seconds(), factor)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected(), nil
}

// NearestActive picks the ongoing outage of the kind whose center is closest
// to the point, searching strictly within withinM. Ties on distance break
// toward the oldest started_at, same as the incident merge.
func (p *OutageRepo) NearestActive(ctx context.Context, kind domain.Kind, lat, lng, withinM float64) (*uuid.UUID, error) {
	const op = "postgres.Outage.NearestActive"

	if !kind.IsOutage() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnknownKind)
	}

	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		)
		SELECT id
		  FROM outages
		 WHERE kind = $3 AND status = 'ongoing'
		   AND ST_DWithin(center, (SELECT g FROM me), $4)
		 ORDER BY center::geometry <-> (SELECT g::geometry FROM me), started_at ASC
		 LIMIT 1
	`

	var id uuid.UUID
	err := p.pool.QueryRow(ctx, query, lng, lat, kind, withinM).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err), slog.String("kind", string(kind)))
		return nil, e.WrapError(ctx, op, err)
	}

	return &id, nil
}

func (p *OutageRepo) Nearby(ctx context.Context, lat, lng, radiusM float64) ([]domain.Outage, error) {
	const op = "postgres.Outage.Nearby"

	// radius_m joins the search radius so a big zone whose center is just
	// outside the viewport still shows up.
	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		)
		SELECT id, kind, status,
		       ST_Y(center::geometry) AS lat,
		       ST_X(center::geometry) AS lng,
		       radius_m, started_at, restored_at
		  FROM outages
		 WHERE ST_DWithin(center, (SELECT g FROM me), $3 + radius_m)
		 ORDER BY (status = 'ongoing') DESC, started_at DESC
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, radiusM)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanOutages(rows, p.logger, op)
}

func (p *OutageRepo) ActiveAll(ctx context.Context, limit int) ([]domain.Outage, error) {
	const op = "postgres.Outage.ActiveAll"

	if limit <= 0 || limit > 2000 {
		limit = 2000
	}

	const query = `
		SELECT id, kind, status,
		       ST_Y(center::geometry) AS lat,
		       ST_X(center::geometry) AS lng,
		       radius_m, started_at, restored_at
		  FROM outages
		 WHERE restored_at IS NULL
		 ORDER BY started_at DESC
		 LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanOutages(rows, p.logger, op)
}

func (p *OutageRepo) Create(ctx context.Context, outage *domain.Outage) error {
	const op = "postgres.Outage.Create"

	if outage == nil || !outage.Kind.IsOutage() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO outages (id, kind, center, status, radius_m, started_at, restored_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7, $8)
	`

	if outage.ID == uuid.Nil {
		outage.ID = uuid.New()
	}
	if outage.StartedAt.IsZero() {
		outage.StartedAt = time.Now().UTC()
	}
	if outage.Status == "" {
		outage.Status = domain.OutageOngoing
	}

	_, err := p.pool.Exec(ctx, query,
		outage.ID,
		outage.Kind,
		outage.Lng,
		outage.Lat,
		outage.Status,
		outage.RadiusM,
		outage.StartedAt,
		outage.RestoredAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func scanOutages(rows pgx.Rows, logger *slog.Logger, op string) ([]domain.Outage, error) {
	outages := make([]domain.Outage, 0, 16)
	for rows.Next() {
		var o domain.Outage
		if err := rows.Scan(
			&o.ID, &o.Kind, &o.Status, &o.Lat, &o.Lng,
			&o.RadiusM, &o.StartedAt, &o.RestoredAt,
		); err != nil {
			logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, err
		}
		outages = append(outages, o)
	}
	if err := rows.Err(); err != nil {
		logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}
	return outages, nil
}
