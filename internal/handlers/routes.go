package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"linkshort/internal/auth"
)

// RegisterRoutes registers all API operations. Operations carrying the
// bearer security requirement are gated by the auth middleware.
func RegisterRoutes(api huma.API, authHandler *AuthHandler, urlHandler *URLHandler, healthHandler *HealthHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register a new user",
		Description:   "Creates an account. Fails with 409 when the email is already registered.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, authHandler.Register)

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Verifies credentials and returns a signed JWT.",
		Tags:        []string{"Auth"},
	}, authHandler.Login)

	huma.Register(api, huma.Operation{
		OperationID: "shorten-url",
		Method:      http.MethodPost,
		Path:        "/shorten",
		Summary:     "Create short link",
		Description: "Shortens a URL and renders its QR code. Idempotent per original URL.",
		Tags:        []string{"Link Shortener"},
		Security: []map[string][]string{
			{auth.SecurityScheme: {}},
		},
	}, urlHandler.CreateShortLink)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/shorten/{short_id}",
		Summary:     "Redirect to original URL",
		Description: "Serves a temporary redirect and counts the hit.",
		Tags:        []string{"Link Shortener"},
	}, urlHandler.Redirect)

	huma.Register(api, huma.Operation{
		OperationID: "qr-code",
		Method:      http.MethodGet,
		Path:        "/shorten/qr/{short_id}",
		Summary:     "QR code image",
		Description: "Streams the PNG image encoding the short URL.",
		Tags:        []string{"Link Shortener"},
	}, urlHandler.QRCode)

	huma.Get(api, "/healthchecker", healthHandler.Check)
}
