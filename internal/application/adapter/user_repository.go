// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID with their managed category IDs loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email (case-insensitive), or nil when
	// absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// SetManagedCategories replaces a user's managed-category associations.
	SetManagedCategories(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID) error
}
