package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements creates everything the engine needs. Idempotent, applied
// by the admin ensure-schema operation and by the integration test harness.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS postgis`,

	`CREATE TABLE IF NOT EXISTS reports (
		id         uuid PRIMARY KEY,
		kind       text NOT NULL,
		signal     text NOT NULL,
		geom       geography(Point,4326) NOT NULL,
		accuracy_m integer,
		note       text,
		media_ref  text,
		user_id    uuid,
		device_id  text,
		created_at timestamptz NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS reports_geom_gix ON reports USING GIST (geom)`,
	`CREATE INDEX IF NOT EXISTS reports_created_ix ON reports (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS reports_kind_signal_ix ON reports (kind, signal)`,

	`CREATE TABLE IF NOT EXISTS incidents (
		id             uuid PRIMARY KEY,
		kind           text NOT NULL,
		center         geography(Point,4326) NOT NULL,
		active         boolean NOT NULL DEFAULT true,
		started_at     timestamptz NOT NULL,
		last_report_at timestamptz NOT NULL,
		ended_at       timestamptz,
		CONSTRAINT incidents_last_after_start CHECK (last_report_at >= started_at)
	)`,
	`CREATE INDEX IF NOT EXISTS incidents_center_gix ON incidents USING GIST (center)`,
	`CREATE INDEX IF NOT EXISTS incidents_active_ix ON incidents (kind) WHERE active`,

	`CREATE TABLE IF NOT EXISTS outages (
		id          uuid PRIMARY KEY,
		kind        text NOT NULL,
		center      geography(Point,4326) NOT NULL,
		status      text NOT NULL DEFAULT 'ongoing',
		radius_m    double precision NOT NULL DEFAULT 500,
		started_at  timestamptz NOT NULL,
		restored_at timestamptz
	)`,
	`CREATE INDEX IF NOT EXISTS outages_center_gix ON outages USING GIST (center)`,
	`CREATE INDEX IF NOT EXISTS outages_status_ix ON outages (kind) WHERE status = 'ongoing'`,

	`CREATE TABLE IF NOT EXISTS acks (
		id         uuid PRIMARY KEY,
		kind       text NOT NULL,
		geom       geography(Point,4326) NOT NULL,
		user_id    uuid,
		created_at timestamptz NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS acks_geom_gix ON acks USING GIST (geom)`,
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
