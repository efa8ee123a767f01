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

type AckRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAckRepo(pool *pgxpool.Pool, logger *slog.Logger) *AckRepo {
	return &AckRepo{pool: pool, logger: logger}
}

func (p *AckRepo) Insert(ctx context.Context, ack *domain.Ack) error {
	const op = "postgres.Ack.Insert"

	if ack == nil || !ack.Kind.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO acks (id, kind, geom, user_id, created_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6)
	`

	if ack.ID == uuid.Nil {
		ack.ID = uuid.New()
	}
	if ack.CreatedAt.IsZero() {
		ack.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query, ack.ID, ack.Kind, ack.Lng, ack.Lat, ack.UserID, ack.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AckRepo) PointsByKind(ctx context.Context, kind domain.Kind, since time.Time) ([]domain.Ack, error) {
	const op = "postgres.Ack.PointsByKind"

	const query = `
		SELECT id, kind,
		       ST_Y(geom::geometry) AS lat,
		       ST_X(geom::geometry) AS lng,
		       user_id, created_at
		  FROM acks
		 WHERE kind = $1
		   AND created_at > $2
	`

	rows, err := p.pool.Query(ctx, query, kind, since)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	acks := make([]domain.Ack, 0, 8)
	for rows.Next() {
		var a domain.Ack
		if err := rows.Scan(&a.ID, &a.Kind, &a.Lat, &a.Lng, &a.UserID, &a.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		acks = append(acks, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return acks, nil
}
