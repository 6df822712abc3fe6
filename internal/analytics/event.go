// Package analytics defines the events emitted by the link shortener and
// the store interface used to persist them.
package analytics

import "time"

// Topic names for the event bus.
const (
	TopicLinkCreated  = "link.created"
	TopicLinkAccessed = "link.accessed"
)

// LinkCreatedEvent is emitted when a URL is shortened for the first time.
type LinkCreatedEvent struct {
	ShortID     string    `json:"shortId"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
}

// LinkAccessedEvent is emitted on every successful redirect.
type LinkAccessedEvent struct {
	ShortID     string    `json:"shortId"`
	OriginalURL string    `json:"originalUrl"`
	AccessedAt  time.Time `json:"accessedAt"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
	Referrer    string    `json:"referrer"`
}
