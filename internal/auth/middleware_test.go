package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkshort/internal/auth"
)

type echoResponse struct {
	Body struct {
		Email string `json:"email"`
	}
}

func newGatedAPI(t *testing.T, tokens *auth.TokenService) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	api.UseMiddleware(auth.Middleware(api, tokens))

	// Protected operation echoing the claims placed on the context.
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
		Security: []map[string][]string{
			{auth.SecurityScheme: {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*echoResponse, error) {
		resp := &echoResponse{}
		if claims, ok := auth.ClaimsFromContext(ctx); ok {
			resp.Body.Email, _ = claims["email"].(string)
		}

		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "public",
		Method:      http.MethodGet,
		Path:        "/public",
	}, func(_ context.Context, _ *struct{}) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	return api
}

func TestMiddleware(t *testing.T) {
	tokens := newTestTokenService(t)

	t.Run("rejects a missing header", func(t *testing.T) {
		api := newGatedAPI(t, tokens)

		resp := api.Get("/whoami")

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		api := newGatedAPI(t, tokens)

		resp := api.Get("/whoami", "Authorization: Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		api := newGatedAPI(t, tokens)

		resp := api.Get("/whoami", "Authorization: Bearer not-a-token")

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("passes a valid token and exposes claims", func(t *testing.T) {
		api := newGatedAPI(t, tokens)

		token, err := tokens.Issue(map[string]any{"email": "user@example.com"})
		require.NoError(t, err)

		resp := api.Get("/whoami", "Authorization: Bearer "+token)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "user@example.com")
	})

	t.Run("ignores operations without the security requirement", func(t *testing.T) {
		api := newGatedAPI(t, tokens)

		resp := api.Get("/public")

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}
