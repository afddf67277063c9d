package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

func testTokenUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  entity.RoleAdmin,
	}
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret", time.Minute, time.Hour)
	user := testTokenUser()

	pair, err := service.GenerateTokenPair(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be generated")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("expected access and refresh tokens to differ")
	}

	t.Run("access token validates with user claims", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("expected user ID %s, got %s", user.ID, claims.UserID)
		}
		if claims.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, claims.Email)
		}
		if claims.Role != entity.RoleAdmin {
			t.Errorf("expected admin role, got %s", claims.Role)
		}
		if claims.ExpiresAt.Before(time.Now()) {
			t.Error("expected expiry in the future")
		}
	})

	t.Run("refresh token validates as refresh", func(t *testing.T) {
		claims, err := service.ValidateRefreshToken(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("expected user ID %s, got %s", user.ID, claims.UserID)
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected refresh token to be rejected as access token")
		}
		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected access token to be rejected as refresh token")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, "not-a-token"); err == nil {
			t.Error("expected parse failure")
		}
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := NewTokenService("different-secret", time.Minute, time.Hour)
		otherPair, err := other.GenerateTokenPair(ctx, user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, otherPair.AccessToken); err == nil {
			t.Error("expected signature mismatch to be rejected")
		}
	})
}

func TestTokenService_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret", time.Minute, time.Hour)
	user := testTokenUser()

	// Sign a token that expired an hour ago with the same secret and claims
	// shape the service uses.
	past := time.Now().UTC().Add(-time.Hour)
	claims := CustomClaims{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
			Issuer:    "expire-tracker",
			Subject:   user.ID.String(),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.ValidateAccessToken(ctx, expired); err == nil {
		t.Error("expected expired token to be rejected")
	}
}
