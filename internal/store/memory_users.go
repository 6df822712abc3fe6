package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"linkshort/internal/user"
)

// MemoryUserStore is an in-memory implementation of user.Repository.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*user.User
}

// NewMemoryUserStore creates a new in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{byEmail: make(map[string]*user.User)}
}

func (m *MemoryUserStore) Add(_ context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[u.Email]; ok {
		return user.ErrConflict
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	stored := *u
	m.byEmail[u.Email] = &stored

	return nil
}

func (m *MemoryUserStore) GetByEmail(_ context.Context, email string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}

	out := *u

	return &out, nil
}
