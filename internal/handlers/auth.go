package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"linkshort/internal/auth"
	"linkshort/internal/user"
)

// TokenIssuer signs a claim set into a token.
type TokenIssuer interface {
	Issue(claims map[string]any) (string, error)
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	users  user.Repository
	tokens TokenIssuer
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users user.Repository, tokens TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new account. The password/confirmation comparison
// happens before any storage access, so a mismatch has no side effect.
func (h *AuthHandler) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	if req.Body.Password != req.Body.ConfirmPassword {
		return nil, huma.Error400BadRequest("Passwords do not match")
	}

	digest, err := auth.HashPassword(req.Body.Password)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to register user")
	}

	u := &user.User{Email: req.Body.Email, PasswordHash: digest}

	if err = h.users.Add(ctx, u); err != nil {
		if errors.Is(err, user.ErrConflict) {
			return nil, huma.Error409Conflict("User already exists.")
		}

		h.logger.Error("failed to add user", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to register user")
	}

	resp := &RegisterResponse{}
	resp.Body.Detail = "User added to the database successfully."

	return resp, nil
}

// Login verifies credentials and issues a token whose claims echo the
// stored user minus the password hash.
func (h *AuthHandler) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	u, err := h.users.GetByEmail(ctx, req.Body.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error404NotFound("User not found.")
		}

		h.logger.Error("failed to look up user", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to log in")
	}

	if !auth.CheckPassword(req.Body.Password, u.PasswordHash) {
		return nil, huma.Error400BadRequest("Incorrect Email or Password")
	}

	token, err := h.tokens.Issue(map[string]any{
		"_id":   u.ID,
		"email": u.Email,
	})
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to log in")
	}

	resp := &LoginResponse{}
	resp.Body.Token = token

	return resp, nil
}
