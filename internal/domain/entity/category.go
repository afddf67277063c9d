// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a named grouping owning zero or more products.
// Deleting a category cascades to the products referencing it.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryWithManagers pairs a category with the restricted users that manage
// it. Admins are not listed; they have implicit access to every category.
type CategoryWithManagers struct {
	Category *Category
	Managers []*User
}
