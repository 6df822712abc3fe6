package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"linkshort/internal/analytics"
)

func TestNoopStore(t *testing.T) {
	s := analytics.NewNoopStore(zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, s.SaveLinkCreated(ctx, &analytics.LinkCreatedEvent{
		ShortID:   "abc123",
		CreatedAt: time.Now(),
	}))

	assert.NoError(t, s.SaveLinkAccessed(ctx, &analytics.LinkAccessedEvent{
		ShortID:    "abc123",
		AccessedAt: time.Now(),
	}))
}
