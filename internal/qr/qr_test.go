package qr_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkshort/internal/qr"
)

// pngMagic is the fixed 8-byte PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestPNGEncoder(t *testing.T) {
	encode := qr.PNGEncoder(128)

	png, err := encode("http://localhost:8000/shorten/abc123")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestFileStore(t *testing.T) {
	t.Run("create writes the artifact under the store directory", func(t *testing.T) {
		dir := t.TempDir()
		store, err := qr.NewFileStore(dir, qr.PNGEncoder(128))
		require.NoError(t, err)

		path, err := store.Create("http://localhost:8000/shorten/abc123", "abc123")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "abc123.png"), path)

		data, err := store.Open(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic))
	})

	t.Run("open missing artifact", func(t *testing.T) {
		store, err := qr.NewFileStore(t.TempDir(), qr.PNGEncoder(128))
		require.NoError(t, err)

		_, err = store.Open(filepath.Join("does", "not", "exist.png"))
		assert.ErrorIs(t, err, qr.ErrNotFound)
	})

	t.Run("encoder failure surfaces", func(t *testing.T) {
		encErr := errors.New("boom")
		store, err := qr.NewFileStore(t.TempDir(), func(string) ([]byte, error) {
			return nil, encErr
		})
		require.NoError(t, err)

		_, err = store.Create("http://localhost:8000/shorten/abc123", "abc123")
		assert.ErrorIs(t, err, encErr)
	})

	t.Run("creates a missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "qr_codes")

		_, err := qr.NewFileStore(dir, qr.PNGEncoder(128))
		assert.NoError(t, err)
		assert.DirExists(t, dir)
	})
}
