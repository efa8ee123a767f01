package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (p *ReportRepo) Insert(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Insert"

	if report == nil || !report.Kind.Valid() || !report.Signal.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if report.Lat < -90 || report.Lat > 90 || report.Lng < -180 || report.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO reports (id, kind, signal, geom, accuracy_m, note, media_ref, user_id, device_id, created_at)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography, $6, $7, $8, $9, $10, $11)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Kind,
		report.Signal,
		report.Lng,
		report.Lat,
		report.AccuracyM,
		report.Note,
		report.MediaRef,
		report.UserID,
		report.DeviceID,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) RecentNearby(ctx context.Context, lat, lng, radiusM float64, limit int) ([]domain.Report, error) {
	const op = "postgres.Report.RecentNearby"

	if limit <= 0 {
		limit = 80
	}

	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		)
		SELECT id, kind, signal,
		       ST_Y(geom::geometry) AS lat,
		       ST_X(geom::geometry) AS lng,
		       accuracy_m, note, media_ref, user_id, device_id, created_at
		FROM reports
		WHERE ST_DWithin(geom, (SELECT g FROM me), $3)
		ORDER BY created_at DESC
		LIMIT $4
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, radiusM, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]domain.Report, 0, limit)
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

// OccurrencePoints feeds the density clustering: raw 'cut' reports of one kind
// inside a window and radius. The grouping itself happens in the service.
func (p *ReportRepo) OccurrencePoints(ctx context.Context, kind domain.Kind, lat, lng, radiusM float64, since time.Time) ([]domain.ReportPoint, error) {
	const op = "postgres.Report.OccurrencePoints"

	const query = `
		WITH me AS (
		  SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS g
		)
		SELECT id, kind,
		       ST_Y(geom::geometry) AS lat,
		       ST_X(geom::geometry) AS lng,
		       created_at
		FROM reports
		WHERE kind = $3
		  AND signal = 'cut'
		  AND created_at > $4
		  AND ST_DWithin(geom, (SELECT g FROM me), $5)
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, kind, since, radiusM)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	points := make([]domain.ReportPoint, 0, 32)
	for rows.Next() {
		var pt domain.ReportPoint
		if err := rows.Scan(&pt.ID, &pt.Kind, &pt.Lat, &pt.Lng, &pt.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		points = append(points, pt)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return points, nil
}
