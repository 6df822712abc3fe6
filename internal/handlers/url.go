package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"linkshort/internal/analytics"
	"linkshort/internal/messaging"
	"linkshort/internal/shortener"
)

// URLHandler handles shorten, redirect, and QR image operations.
type URLHandler struct {
	service             *shortener.Service
	publishLinkCreated  messaging.Publish[analytics.LinkCreatedEvent]
	publishLinkAccessed messaging.Publish[analytics.LinkAccessedEvent]
	logger              *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(
	service *shortener.Service,
	publishLinkCreated messaging.Publish[analytics.LinkCreatedEvent],
	publishLinkAccessed messaging.Publish[analytics.LinkAccessedEvent],
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		service:             service,
		publishLinkCreated:  publishLinkCreated,
		publishLinkAccessed: publishLinkAccessed,
		logger:              logger,
	}
}

// CreateShortLink shortens a URL. Shortening an already known URL returns
// the existing record unchanged.
func (h *URLHandler) CreateShortLink(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	link, created, err := h.service.Shorten(ctx, req.Body.OriginalURL)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidURL):
			return nil, huma.Error422UnprocessableEntity("original_url is not a valid URL")
		case errors.Is(err, shortener.ErrConflict):
			return nil, huma.Error409Conflict("URL already exists.")
		default:
			h.logger.Error("failed to shorten url", zap.Error(err))

			return nil, huma.Error500InternalServerError("failed to shorten url")
		}
	}

	if created {
		meta := RequestMetaFromContext(ctx)
		event := &analytics.LinkCreatedEvent{
			ShortID:     link.ShortID,
			OriginalURL: link.OriginalURL,
			CreatedAt:   link.CreatedAt,
			ClientIP:    meta.ClientIP,
			UserAgent:   meta.UserAgent,
		}

		if err := h.publishLinkCreated(event); err != nil {
			h.logger.Error("failed to publish link created event",
				zap.String("shortId", link.ShortID),
				zap.Error(err),
			)
		}
	}

	resp := &ShortenResponse{}
	resp.Body.ShortURL = link.ShortURL
	resp.Body.QRCode = link.QRURL
	resp.Body.HitCount = link.HitCount
	resp.Body.ShortID = link.ShortID

	return resp, nil
}

// Redirect serves a temporary redirect to the original URL. The hit-count
// increment and the analytics publish are best-effort and never block the
// redirect.
func (h *URLHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	link, err := h.service.Resolve(ctx, req.ShortID)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("Short URL not found")
		}

		h.logger.Error("failed to resolve short url", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to resolve short url")
	}

	h.service.RecordHit(ctx, link.ShortID)

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkAccessedEvent{
		ShortID:     link.ShortID,
		OriginalURL: link.OriginalURL,
		AccessedAt:  time.Now(),
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
		Referrer:    meta.Referrer,
	}

	if err = h.publishLinkAccessed(event); err != nil {
		h.logger.Error("failed to publish link accessed event",
			zap.String("shortId", link.ShortID),
			zap.Error(err),
		)
	}

	resp := &RedirectResponse{Status: http.StatusTemporaryRedirect}
	resp.Headers.Location = link.OriginalURL

	return resp, nil
}

// QRCode streams the PNG image encoding the short URL.
func (h *URLHandler) QRCode(ctx context.Context, req *QRCodeRequest) (*QRCodeResponse, error) {
	data, err := h.service.QRImage(ctx, req.ShortID)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("QR code not found")
		}

		h.logger.Error("failed to read qr image", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to read qr image")
	}

	return &QRCodeResponse{
		ContentType: "image/png",
		Body:        data,
	}, nil
}
