// Package auth contains authentication use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.UserRole
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User   *entity.User
	Tokens *adapter.TokenPair
}

// RegisterUserUseCase handles new user registration.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute validates the registration data, persists the user and issues an
// initial token pair.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already registered",
			domainerror.ErrEmailExists,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}

	user := entity.NewUser(input.Name, email, hash, role)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterUserOutput{User: user, Tokens: tokens}, nil
}

func (uc *RegisterUserUseCase) validateInput(input RegisterUserInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"name and email are required",
			domainerror.ErrInvalidCredentials,
		)
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			err,
		)
	}
	return nil
}
