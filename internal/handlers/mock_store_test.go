package handlers_test

import (
	"context"
	"errors"
	"fmt"

	"linkshort/internal/shortener"
	"linkshort/internal/user"
)

var errMock = errors.New("mock error")

// mockLinkStore is a configurable shortener.Repository for error paths.
type mockLinkStore struct {
	saveErr          error
	getByShortIDErr  error
	getByOriginalErr error
	incrementErr     error
	link             *shortener.ShortLink
}

func (m *mockLinkStore) Save(_ context.Context, _ *shortener.ShortLink) error {
	return m.saveErr
}

func (m *mockLinkStore) GetByShortID(_ context.Context, _ string) (*shortener.ShortLink, error) {
	if m.getByShortIDErr != nil {
		return nil, m.getByShortIDErr
	}

	return m.link, nil
}

func (m *mockLinkStore) GetByOriginalURL(_ context.Context, _ string) (*shortener.ShortLink, error) {
	if m.getByOriginalErr != nil {
		return nil, m.getByOriginalErr
	}

	return m.link, nil
}

func (m *mockLinkStore) IncrementHitCount(_ context.Context, _ string) error {
	return m.incrementErr
}

// mockUserStore is a configurable user.Repository for error paths.
type mockUserStore struct {
	addErr        error
	getByEmailErr error
	user          *user.User
}

func (m *mockUserStore) Add(_ context.Context, _ *user.User) error {
	return m.addErr
}

func (m *mockUserStore) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	if m.getByEmailErr != nil {
		return nil, m.getByEmailErr
	}

	return m.user, nil
}

// fakeQRStore keeps rendered artifacts in a map instead of on disk.
type fakeQRStore struct {
	createErr error
	openErr   error
	images    map[string][]byte
}

func newFakeQRStore() *fakeQRStore {
	return &fakeQRStore{images: make(map[string][]byte)}
}

func (f *fakeQRStore) Create(link, shortID string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}

	path := fmt.Sprintf("qr_codes/%s.png", shortID)
	f.images[path] = []byte("png:" + link)

	return path, nil
}

func (f *fakeQRStore) Open(path string) ([]byte, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}

	data, ok := f.images[path]
	if !ok {
		return nil, errMock
	}

	return data, nil
}
