package analytics

import (
	"context"

	"go.uber.org/zap"
)

// NoopStore is an analytics.Store that only logs events. It is used when
// no database is configured for the consumer.
type NoopStore struct {
	logger *zap.Logger
}

// NewNoopStore creates a log-only analytics store.
func NewNoopStore(logger *zap.Logger) *NoopStore {
	return &NoopStore{logger: logger}
}

func (n *NoopStore) SaveLinkCreated(_ context.Context, event *LinkCreatedEvent) error {
	n.logger.Info("link created event received",
		zap.String("shortId", event.ShortID),
		zap.String("originalUrl", event.OriginalURL),
		zap.Time("createdAt", event.CreatedAt),
	)

	return nil
}

func (n *NoopStore) SaveLinkAccessed(_ context.Context, event *LinkAccessedEvent) error {
	n.logger.Info("link accessed event received",
		zap.String("shortId", event.ShortID),
		zap.Time("accessedAt", event.AccessedAt),
		zap.String("referrer", event.Referrer),
	)

	return nil
}
