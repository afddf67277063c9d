package auth

import (
	"context"
	"fmt"

	"github.com/expire-tracker/backend/internal/application/adapter"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of token refresh.
type RefreshTokenOutput struct {
	Tokens *adapter.TokenPair
}

// RefreshTokenUseCase exchanges a valid refresh token for a new token pair.
type RefreshTokenUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute validates the refresh token and issues a new pair. The user is
// reloaded so revoked accounts and role changes take effect on rotation.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid refresh token",
			err,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user no longer exists",
			domainerror.ErrUserNotFound,
		)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshTokenOutput{Tokens: tokens}, nil
}
