// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the validated claims of a token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.UserRole
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair for the user.
	GenerateTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
}
