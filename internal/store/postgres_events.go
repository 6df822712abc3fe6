package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"linkshort/internal/analytics"
)

// PostgresEventStore persists analytics events into the link_events table.
type PostgresEventStore struct {
	pool *pgxpool.Pool
}

// NewPostgresEventStore creates a new PostgreSQL-backed analytics store.
func NewPostgresEventStore(pool *pgxpool.Pool) *PostgresEventStore {
	return &PostgresEventStore{pool: pool}
}

func (p *PostgresEventStore) SaveLinkCreated(ctx context.Context, event *analytics.LinkCreatedEvent) error {
	query := `
		INSERT INTO link_events (event_type, short_id, original_url, client_ip, user_agent, occurred_at)
		VALUES ('created', $1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		event.ShortID,
		event.OriginalURL,
		event.ClientIP,
		event.UserAgent,
		event.CreatedAt,
	)

	return err
}

func (p *PostgresEventStore) SaveLinkAccessed(ctx context.Context, event *analytics.LinkAccessedEvent) error {
	query := `
		INSERT INTO link_events (event_type, short_id, original_url, client_ip, user_agent, referrer, occurred_at)
		VALUES ('accessed', $1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query,
		event.ShortID,
		event.OriginalURL,
		event.ClientIP,
		event.UserAgent,
		event.Referrer,
		event.AccessedAt,
	)

	return err
}
