package store

import (
	"context"
	"sync"

	"linkshort/internal/shortener"
)

// MemoryLinkStore is an in-memory implementation of shortener.Repository
// with the same sentinel-error semantics as the Postgres store.
type MemoryLinkStore struct {
	mu         sync.RWMutex
	byShortID  map[string]*shortener.ShortLink
	byOriginal map[string]string // original_url -> short_id
}

// NewMemoryLinkStore creates a new in-memory link store.
func NewMemoryLinkStore() *MemoryLinkStore {
	return &MemoryLinkStore{
		byShortID:  make(map[string]*shortener.ShortLink),
		byOriginal: make(map[string]string),
	}
}

func (m *MemoryLinkStore) Save(_ context.Context, link *shortener.ShortLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byShortID[link.ShortID]; ok {
		return shortener.ErrConflict
	}

	if _, ok := m.byOriginal[link.OriginalURL]; ok {
		return shortener.ErrConflict
	}

	stored := *link
	m.byShortID[link.ShortID] = &stored
	m.byOriginal[link.OriginalURL] = link.ShortID

	return nil
}

func (m *MemoryLinkStore) GetByShortID(_ context.Context, shortID string) (*shortener.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.byShortID[shortID]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	out := *link

	return &out, nil
}

func (m *MemoryLinkStore) GetByOriginalURL(_ context.Context, originalURL string) (*shortener.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shortID, ok := m.byOriginal[originalURL]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	out := *m.byShortID[shortID]

	return &out, nil
}

func (m *MemoryLinkStore) IncrementHitCount(_ context.Context, shortID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.byShortID[shortID]
	if !ok {
		return shortener.ErrNotFound
	}

	link.HitCount++

	return nil
}
