package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	User   *entity.User
	Tokens *adapter.TokenPair
}

// LoginUserUseCase handles credential verification and token issuance.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute verifies the credentials and returns a fresh token pair. Unknown
// emails and wrong passwords produce the same error so callers cannot probe
// for registered accounts.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, uc.invalidCredentials()
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, uc.invalidCredentials()
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{User: user, Tokens: tokens}, nil
}

func (uc *LoginUserUseCase) invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
