// Package auth provides JWT issuance and verification, password hashing,
// and the bearer-token middleware guarding protected operations.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// ErrExpiredToken is returned when the token's expiration has passed.
var ErrExpiredToken = errors.New("token has expired")

// ErrInvalidToken is returned when the signature or structure is malformed.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies signed, time-bound tokens. Verification
// is stateless, keyed only by the shared secret and algorithm.
//
// Issued tokens carry no expiration unless the caller supplies an "exp"
// claim: the expiration-minutes setting is accepted as configuration
// surface but deliberately not applied at issuance, matching the service's
// historical behavior. Verify still honors an "exp" claim when present.
type TokenService struct {
	secret            []byte
	method            jwt.SigningMethod
	ExpirationMinutes int
}

// NewTokenService validates the signing configuration eagerly. A missing
// secret or algorithm, or a non-HMAC algorithm, is a configuration error
// and should be treated as startup-fatal by callers.
func NewTokenService(secret, algorithm string, expirationMinutes int) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	if algorithm == "" {
		return nil, errors.New("jwt algorithm is required")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown jwt algorithm %q", algorithm)
	}

	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("jwt algorithm %q is not an HMAC method", algorithm)
	}

	if expirationMinutes < 0 {
		return nil, fmt.Errorf("jwt expiration minutes must not be negative, got %d", expirationMinutes)
	}

	return &TokenService{
		secret:            []byte(secret),
		method:            method,
		ExpirationMinutes: expirationMinutes,
	}, nil
}

// Issue signs claims with the configured secret and algorithm.
func (t *TokenService) Issue(claims map[string]any) (string, error) {
	token := jwt.NewWithClaims(t.method, jwt.MapClaims(claims))

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify decodes the token and returns its claims. It returns
// ErrExpiredToken when the embedded expiration has passed and
// ErrInvalidToken for any other verification failure.
func (t *TokenService) Verify(tokenString string) (map[string]any, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != t.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}

		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// IsValid reports whether the token verifies, collapsing all failure kinds
// to false.
func (t *TokenService) IsValid(tokenString string) bool {
	_, err := t.Verify(tokenString)

	return err == nil
}
