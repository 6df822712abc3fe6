package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the backing tables if they do not exist. It runs once at
// startup before the pool is handed to the repositories.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS short_links (
			short_id TEXT PRIMARY KEY,
			original_url TEXT UNIQUE NOT NULL,
			short_url TEXT NOT NULL,
			qr_url TEXT NOT NULL,
			qr_code_path TEXT NOT NULL,
			hit_count BIGINT NOT NULL DEFAULT 0 CHECK (hit_count >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS link_events (
			id BIGSERIAL PRIMARY KEY,
			event_type TEXT NOT NULL,
			short_id TEXT NOT NULL,
			original_url TEXT NOT NULL DEFAULT '',
			client_ip TEXT NOT NULL DEFAULT '',
			user_agent TEXT NOT NULL DEFAULT '',
			referrer TEXT NOT NULL DEFAULT '',
			occurred_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}

	return nil
}
