package user

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no user exists for the given email.
var ErrNotFound = errors.New("user not found")

// ErrConflict is returned when the email is already registered.
var ErrConflict = errors.New("user already exists")

// User represents a registered account. PasswordHash is a bcrypt digest;
// the plaintext password is never stored.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Repository defines the interface for user storage operations.
// Email uniqueness is enforced by the storage layer, not by callers.
type Repository interface {
	// Add persists a new user. Returns ErrConflict when the email is taken.
	Add(ctx context.Context, u *User) error

	// GetByEmail retrieves a user by email. Returns ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
