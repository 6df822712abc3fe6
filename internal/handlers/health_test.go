package handlers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkshort/internal/handlers"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(_ context.Context) error { return s.err }

func TestHealthCheck(t *testing.T) {
	t.Run("healthy when the database responds", func(t *testing.T) {
		handler := handlers.NewHealthHandler(stubPinger{}, "1.0.0")

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "Healthy !", resp.Body.Message)
		assert.Equal(t, "1.0.0", resp.Body.Version)
	})

	t.Run("degraded when the database is unreachable", func(t *testing.T) {
		handler := handlers.NewHealthHandler(stubPinger{err: errMock}, "1.0.0")

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "Degraded: database unreachable", resp.Body.Message)
		assert.Equal(t, "1.0.0", resp.Body.Version)
	})
}
