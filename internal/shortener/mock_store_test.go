package shortener_test

import (
	"context"
	"errors"

	"linkshort/internal/shortener"
)

var errMock = errors.New("mock error")

// mockLinkStore lets tests force specific repository outcomes.
type mockLinkStore struct {
	saveErr          error
	getByShortIDErr  error
	getByOriginalErr error
	incrementErr     error
	link             *shortener.ShortLink
	saved            []*shortener.ShortLink
}

func (m *mockLinkStore) Save(_ context.Context, link *shortener.ShortLink) error {
	if m.saveErr != nil {
		return m.saveErr
	}

	m.saved = append(m.saved, link)

	return nil
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

// fakeQRStore keeps QR artifacts in a map instead of on disk.
type fakeQRStore struct {
	createErr error
	images    map[string][]byte
}

func newFakeQRStore() *fakeQRStore {
	return &fakeQRStore{images: make(map[string][]byte)}
}

func (f *fakeQRStore) Create(link, shortID string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}

	path := "qr_codes/" + shortID + ".png"
	f.images[path] = []byte(link)

	return path, nil
}

func (f *fakeQRStore) Open(path string) ([]byte, error) {
	data, ok := f.images[path]
	if !ok {
		return nil, errMock
	}

	return data, nil
}
