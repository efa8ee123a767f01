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

type AdminRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAdminRepo(pool *pgxpool.Pool, logger *slog.Logger) *AdminRepo {
	return &AdminRepo{pool: pool, logger: logger}
}

func (p *AdminRepo) SeedIncident(ctx context.Context, kind domain.Kind, lat, lng float64, now time.Time) (uuid.UUID, error) {
	const op = "postgres.Admin.SeedIncident"

	if !kind.IsIncident() {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrUnknownKind)
	}

	const query = `
		INSERT INTO incidents (id, kind, center, active, started_at, last_report_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, true, $5, $5)
	`

	id := uuid.New()
	if _, err := p.pool.Exec(ctx, query, id, kind, lng, lat, now); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return uuid.Nil, e.WrapError(ctx, op, err)
	}

	return id, nil
}

// ReopenNearestIncident is the explicit admin override to closure
// monotonicity: clears ended_at on the nearest closed incident of the kind.
func (p *AdminRepo) ReopenNearestIncident(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64) (*uuid.UUID, error) {
	const op = "postgres.Admin.ReopenNearestIncident"

	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		),
		cand AS (
		  SELECT id
		    FROM incidents
		   WHERE kind = $3 AND active = false
		     AND ST_DWithin(center, (SELECT g FROM me), $4)
		   ORDER BY center::geometry <-> (SELECT g::geometry FROM me)
		   LIMIT 1
		)
		UPDATE incidents i
		   SET active = true, ended_at = NULL
		  FROM cand
		 WHERE i.id = cand.id
		RETURNING i.id
	`

	var id uuid.UUID
	err := p.pool.QueryRow(ctx, query, lng, lat, kind, radiusM).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &id, nil
}

func (p *AdminRepo) ReopenNearestOutage(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64) (*uuid.UUID, error) {
	const op = "postgres.Admin.ReopenNearestOutage"

	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		),
		cand AS (
		  SELECT id
		    FROM outages
		   WHERE kind = $3 AND status = 'restored'
		     AND ST_DWithin(center, (SELECT g FROM me), $4)
		   ORDER BY center::geometry <-> (SELECT g::geometry FROM me)
		   LIMIT 1
		)
		UPDATE outages o
		   SET status = 'ongoing', restored_at = NULL
		  FROM cand
		 WHERE o.id = cand.id
		RETURNING o.id
	`

	var id uuid.UUID
	err := p.pool.QueryRow(ctx, query, lng, lat, kind, radiusM).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &id, nil
}

func (p *AdminRepo) PurgeOldReports(ctx context.Context, olderThan time.Time) (int64, error) {
	const op = "postgres.Admin.PurgeOldReports"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM reports WHERE created_at < $1`, olderThan)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected(), nil
}

func (p *AdminRepo) WipeAll(ctx context.Context) error {
	const op = "postgres.Admin.WipeAll"

	for _, table := range []string{"reports", "incidents", "outages", "acks"} {
		if _, err := p.pool.Exec(ctx, "TRUNCATE "+table); err != nil {
			p.logger.Error("db truncate failed", slog.String("op", op), slog.String("table", table), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}

	return nil
}

func (p *AdminRepo) EnsureSchema(ctx context.Context) error {
	const op = "postgres.Admin.EnsureSchema"

	if err := ensureSchema(ctx, p.pool); err != nil {
		p.logger.Error("schema apply failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AdminRepo) ExportReports(ctx context.Context, from, to time.Time, limit int) ([]domain.Report, error) {
	const op = "postgres.Admin.ExportReports"

	if limit <= 0 || limit > 50000 {
		limit = 50000
	}

	const query = `
		SELECT id, kind, signal,
		       ST_Y(geom::geometry) AS lat,
		       ST_X(geom::geometry) AS lng,
		       accuracy_m, note, media_ref, user_id, device_id, created_at
		  FROM reports
		 WHERE created_at >= $1 AND created_at < $2
		 ORDER BY created_at ASC
		 LIMIT $3
	`

	rows, err := p.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]domain.Report, 0, 256)
	for rows.Next() {
		var r domain.Report
		if err := rows.Scan(
			&r.ID, &r.Kind, &r.Signal, &r.Lat, &r.Lng,
			&r.AccuracyM, &r.Note, &r.MediaRef, &r.UserID, &r.DeviceID, &r.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}
