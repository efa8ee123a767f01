package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/pkg/e"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) Summary(ctx context.Context, hours int) (*domain.StatsSummary, error) {
	const op = "postgres.Stats.Summary"

	if hours <= 0 || hours > 720 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// число * interval '1 hour' — безопасная параметризация интервала
	const totalsQuery = `
		SELECT COUNT(*)::bigint AS n_total,
		       COUNT(*) FILTER (WHERE signal = 'cut')::bigint      AS n_cut,
		       COUNT(*) FILTER (WHERE signal = 'restored')::bigint AS n_restored
		  FROM reports
		 WHERE created_at > NOW() - ($1 * INTERVAL '1 hour')
	`

	s := &domain.StatsSummary{Hours: hours}
	if err := p.pool.QueryRow(ctx, totalsQuery, hours).Scan(&s.TotalReports, &s.CutReports, &s.RestoredReports); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int("hours", hours))
		return nil, e.WrapError(ctx, op, err)
	}

	const activeQuery = `
		SELECT (SELECT COUNT(*) FROM incidents WHERE active = true)::bigint,
		       (SELECT COUNT(*) FROM outages WHERE status = 'ongoing')::bigint
	`
	if err := p.pool.QueryRow(ctx, activeQuery).Scan(&s.ActiveIncidents, &s.ActiveOutages); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const byKindQuery = `
		SELECT kind, COUNT(*)::bigint AS n
		  FROM reports
		 WHERE created_at > NOW() - ($1 * INTERVAL '1 hour')
		 GROUP BY kind
		 ORDER BY n DESC
	`

	rows, err := p.pool.Query(ctx, byKindQuery, hours)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var kc domain.KindCount
		if err := rows.Scan(&kc.Kind, &kc.Count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		s.ByKind = append(s.ByKind, kc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return s, nil
}
