package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// SecurityScheme is the name operations use to declare that they require a
// bearer token via huma.Operation.Security.
const SecurityScheme = "bearerAuth"

type claimsKey struct{}

// ContextWithClaims attaches verified token claims to the context.
func ContextWithClaims(ctx context.Context, claims map[string]any) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext extracts verified token claims from the context.
// The second return is false for requests that did not pass the middleware.
func ClaimsFromContext(ctx context.Context) (map[string]any, bool) {
	claims, ok := ctx.Value(claimsKey{}).(map[string]any)

	return claims, ok
}

// Verifier verifies a raw token and returns its claims.
type Verifier interface {
	Verify(token string) (map[string]any, error)
}

// Middleware returns a Huma middleware enforcing bearer authentication on
// operations that declare the SecurityScheme requirement. Requests with a
// non-Bearer scheme or a token that fails verification are rejected with
// 403; verified claims are placed on the request context for downstream
// handlers.
func Middleware(api huma.API, tokens Verifier) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresBearer(ctx.Operation()) {
			next(ctx)

			return
		}

		scheme, credentials, ok := strings.Cut(ctx.Header("Authorization"), " ")
		if !ok || scheme != "Bearer" {
			_ = huma.WriteErr(api, ctx, http.StatusForbidden, "Invalid authentication token")

			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(credentials))
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusForbidden, "Invalid token or expired token")

			return
		}

		ctx = huma.WithContext(ctx, ContextWithClaims(ctx.Context(), claims))

		next(ctx)
	}
}

func requiresBearer(op *huma.Operation) bool {
	if op == nil {
		return false
	}

	for _, requirement := range op.Security {
		if _, ok := requirement[SecurityScheme]; ok {
			return true
		}
	}

	return false
}
