// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the access level of a user.
type UserRole string

const (
	// RoleAdmin grants implicit access to every category and all write
	// operations.
	RoleAdmin UserRole = "admin"
	// RoleUser restricts the visible and actionable product set to the
	// user's managed categories.
	RoleUser UserRole = "user"
)

// User represents an actor in the ExpireTracker system.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	// ManagedCategoryIDs lists the categories a restricted user manages.
	// Empty and irrelevant for admins.
	ManagedCategoryIDs []uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User entity.
func NewUser(name, email, passwordHash string, role UserRole) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CategoryScope returns the category restriction to apply to queries on
// behalf of this user: nil for admins (unscoped), otherwise the managed list.
// The returned slice is never nil for restricted users, so a user managing
// nothing sees nothing.
func (u *User) CategoryScope() []uuid.UUID {
	if u.IsAdmin() {
		return nil
	}
	scope := make([]uuid.UUID, 0, len(u.ManagedCategoryIDs))
	return append(scope, u.ManagedCategoryIDs...)
}

// ManagesCategory reports whether the user may act on products in the given
// category. Admins manage everything.
func (u *User) ManagesCategory(categoryID uuid.UUID) bool {
	if u.IsAdmin() {
		return true
	}
	for _, id := range u.ManagedCategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
