package shortener

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no short link exists for the given key.
var ErrNotFound = errors.New("short link not found")

// ErrConflict is returned when an insert violates a uniqueness constraint
// (original_url or short_id already taken).
var ErrConflict = errors.New("short link already exists")

// ErrInvalidURL is returned when the submitted URL is not an absolute
// http(s) URL with a host.
var ErrInvalidURL = errors.New("invalid url")

// ShortLink represents a shortened URL entity.
type ShortLink struct {
	ShortID     string
	OriginalURL string
	ShortURL    string
	QRURL       string
	QRCodePath  string
	HitCount    int64
	CreatedAt   time.Time
}

// Repository defines the interface for short link storage operations.
// Uniqueness of short_id and original_url is enforced by the storage layer.
type Repository interface {
	// Save persists a new short link. Returns ErrConflict on a
	// uniqueness violation.
	Save(ctx context.Context, link *ShortLink) error

	// GetByShortID retrieves a link by its short identifier.
	// Returns ErrNotFound when absent.
	GetByShortID(ctx context.Context, shortID string) (*ShortLink, error)

	// GetByOriginalURL retrieves a link by its original URL.
	// Returns ErrNotFound when absent.
	GetByOriginalURL(ctx context.Context, originalURL string) (*ShortLink, error)

	// IncrementHitCount adds one to the hit counter of the given link.
	// Returns ErrNotFound when no row matched.
	IncrementHitCount(ctx context.Context, shortID string) error
}
