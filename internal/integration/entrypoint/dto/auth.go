// Package dto defines request and response structures for the API endpoints.
package dto

import (
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the request body for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	ManagedCategoryIDs []string `json:"managedCategoryIds"`
}

// AuthResponse carries the user and token pair after register or login.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// TokenResponse carries a refreshed token pair.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ToUserResponse converts a user entity to its response representation.
func ToUserResponse(user *entity.User) UserResponse {
	managed := make([]string, len(user.ManagedCategoryIDs))
	for i, id := range user.ManagedCategoryIDs {
		managed[i] = id.String()
	}
	return UserResponse{
		ID:                 user.ID.String(),
		Name:               user.Name,
		Email:              user.Email,
		Role:               string(user.Role),
		ManagedCategoryIDs: managed,
	}
}
