package shortener

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"linkshort/internal/qr"
)

// QRStore renders and persists QR images for short links.
type QRStore interface {
	// Create renders a QR image encoding link, persists it keyed by
	// shortID, and returns the artifact path.
	Create(link, shortID string) (string, error)

	// Open reads back the image bytes at path. Returns qr.ErrNotFound
	// when the artifact is missing.
	Open(path string) ([]byte, error)
}

// Service implements the shorten/resolve flow. All cross-request
// consistency is delegated to the repository's uniqueness constraints;
// the service never locks.
type Service struct {
	store        Repository
	qrStore      QRStore
	generateCode CodeGenerator
	baseURL      string
	logger       *zap.Logger
}

// NewService creates a new shortening service. baseURL is the public base
// of generated links, without a trailing slash.
func NewService(store Repository, qrStore QRStore, generator CodeGenerator, baseURL string, logger *zap.Logger) *Service {
	return &Service{
		store:        store,
		qrStore:      qrStore,
		generateCode: generator,
		baseURL:      baseURL,
		logger:       logger,
	}
}

// ValidateURL checks that rawURL is an absolute http(s) URL with a host.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// Shorten returns the short link for rawURL, creating it on first request.
// The boolean reports whether a new record was created; re-shortening an
// already known URL returns the existing record unchanged. A race between
// two first-time callers for the same URL is resolved by re-fetching the
// winner after a uniqueness conflict; only a conflict that cannot be
// resolved that way (a short ID collision) is returned as ErrConflict.
func (s *Service) Shorten(ctx context.Context, rawURL string) (*ShortLink, bool, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, false, err
	}

	existing, err := s.store.GetByOriginalURL(ctx, rawURL)
	if err == nil {
		return existing, false, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	shortID := s.generateCode()
	shortURL := fmt.Sprintf("%s/%s", s.baseURL, shortID)
	qrURL := fmt.Sprintf("%s/qr/%s", s.baseURL, shortID)

	qrPath, err := s.qrStore.Create(shortURL, shortID)
	if err != nil {
		return nil, false, fmt.Errorf("generate qr code: %w", err)
	}

	link := &ShortLink{
		ShortID:     shortID,
		OriginalURL: rawURL,
		ShortURL:    shortURL,
		QRURL:       qrURL,
		QRCodePath:  qrPath,
		HitCount:    0,
		CreatedAt:   time.Now(),
	}

	if err = s.store.Save(ctx, link); err != nil {
		if !errors.Is(err, ErrConflict) {
			return nil, false, err
		}

		// Lost a concurrent race on original_url: both callers get
		// the single persisted winner.
		winner, werr := s.store.GetByOriginalURL(ctx, rawURL)
		if werr == nil {
			return winner, false, nil
		}

		if errors.Is(werr, ErrNotFound) {
			return nil, false, ErrConflict
		}

		return nil, false, werr
	}

	return link, true, nil
}

// Resolve returns the short link for shortID, for serving a redirect.
func (s *Service) Resolve(ctx context.Context, shortID string) (*ShortLink, error) {
	return s.store.GetByShortID(ctx, shortID)
}

// RecordHit increments the hit counter for shortID. The increment is
// best-effort: failures are logged and swallowed so a redirect is never
// blocked by counter bookkeeping.
func (s *Service) RecordHit(ctx context.Context, shortID string) {
	if err := s.store.IncrementHitCount(ctx, shortID); err != nil {
		s.logger.Error("failed to increment hit count",
			zap.String("shortId", shortID),
			zap.Error(err),
		)
	}
}

// QRImage returns the PNG bytes of the QR code for shortID. Returns
// ErrNotFound when either the link or its image artifact is missing.
func (s *Service) QRImage(ctx context.Context, shortID string) ([]byte, error) {
	link, err := s.store.GetByShortID(ctx, shortID)
	if err != nil {
		return nil, err
	}

	data, err := s.qrStore.Open(link.QRCodePath)
	if err != nil {
		if errors.Is(err, qr.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return data, nil
}
