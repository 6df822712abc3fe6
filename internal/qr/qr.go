// Package qr renders QR code images for short links and stores them as
// PNG artifacts on disk, keyed by short ID.
package qr

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrNotFound is returned when the backing image artifact is missing.
var ErrNotFound = errors.New("qr code not found")

// Encoder renders a PNG image encoding the given link.
type Encoder func(link string) ([]byte, error)

// PNGEncoder returns an Encoder producing square PNG images of the given
// pixel size with medium error recovery.
func PNGEncoder(size int) Encoder {
	return func(link string) ([]byte, error) {
		return qrcode.Encode(link, qrcode.Medium, size)
	}
}

// FileStore persists QR images under a single directory as
// <dir>/<short_id>.png.
type FileStore struct {
	dir    string
	encode Encoder
}

// NewFileStore creates a file-backed QR store, creating the directory if
// needed.
func NewFileStore(dir string, encode Encoder) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create qr directory: %w", err)
	}

	return &FileStore{dir: dir, encode: encode}, nil
}

// Create renders a QR image for link and writes it keyed by shortID.
// It returns the path of the written artifact.
func (s *FileStore) Create(link, shortID string) (string, error) {
	png, err := s.encode(link)
	if err != nil {
		return "", fmt.Errorf("encode qr image: %w", err)
	}

	path := filepath.Join(s.dir, shortID+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write qr image: %w", err)
	}

	return path, nil
}

// Open reads back the image bytes at path. Returns ErrNotFound when the
// artifact does not exist.
func (s *FileStore) Open(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return data, nil
}
