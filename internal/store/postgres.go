// Package store contains the PostgreSQL-backed repositories plus in-memory
// implementations used by tests. Uniqueness of emails, original URLs and
// short IDs is enforced by database constraints; unique violations surface
// as the domain Conflict errors.
package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkshort/internal/shortener"
)

// PostgresLinkStore is a PostgreSQL implementation of shortener.Repository.
type PostgresLinkStore struct {
	pool *pgxpool.Pool
}

// NewPostgresLinkStore creates a new PostgreSQL-backed link store.
func NewPostgresLinkStore(pool *pgxpool.Pool) *PostgresLinkStore {
	return &PostgresLinkStore{pool: pool}
}

func (p *PostgresLinkStore) Save(ctx context.Context, link *shortener.ShortLink) error {
	query := `
		INSERT INTO short_links (short_id, original_url, short_url, qr_url, qr_code_path, hit_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := p.pool.Exec(ctx, query,
		link.ShortID,
		link.OriginalURL,
		link.ShortURL,
		link.QRURL,
		link.QRCodePath,
		link.HitCount,
		link.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return shortener.ErrConflict
		}

		return err
	}

	return nil
}

func (p *PostgresLinkStore) GetByShortID(ctx context.Context, shortID string) (*shortener.ShortLink, error) {
	query := `
		SELECT short_id, original_url, short_url, qr_url, qr_code_path, hit_count, created_at
		FROM short_links
		WHERE short_id = $1
	`

	return p.scanLink(p.pool.QueryRow(ctx, query, shortID))
}

func (p *PostgresLinkStore) GetByOriginalURL(ctx context.Context, originalURL string) (*shortener.ShortLink, error) {
	query := `
		SELECT short_id, original_url, short_url, qr_url, qr_code_path, hit_count, created_at
		FROM short_links
		WHERE original_url = $1
	`

	return p.scanLink(p.pool.QueryRow(ctx, query, originalURL))
}

// IncrementHitCount adds one to the counter atomically in the database.
// A zero rows-affected result means the link vanished between read and
// write and is reported as ErrNotFound.
func (p *PostgresLinkStore) IncrementHitCount(ctx context.Context, shortID string) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE short_links SET hit_count = hit_count + 1 WHERE short_id = $1`,
		shortID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortener.ErrNotFound
	}

	return nil
}

func (p *PostgresLinkStore) scanLink(row pgx.Row) (*shortener.ShortLink, error) {
	var link shortener.ShortLink

	err := row.Scan(
		&link.ShortID,
		&link.OriginalURL,
		&link.ShortURL,
		&link.QRURL,
		&link.QRCodePath,
		&link.HitCount,
		&link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &link, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
