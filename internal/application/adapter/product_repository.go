// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

// SortOrder represents the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ProductFilter narrows a product query. Zero values mean "no constraint".
type ProductFilter struct {
	// Name matches case-insensitively on a substring of the product name.
	Name string
	// CategoryID restricts to a single category.
	CategoryID *uuid.UUID
	// Status restricts to products with the given persisted status.
	Status entity.ProductStatus
	// ExpiryAfter / ExpiryBefore bound the expiry date range (inclusive).
	ExpiryAfter  *time.Time
	ExpiryBefore *time.Time
	// CategoryScope, when non-nil, restricts results to the given categories.
	// Used for restricted users; nil means unscoped (admin).
	CategoryScope []uuid.UUID
	// SortBy is one of: name, expiryDate, status, createdAt. Empty sorts by name.
	SortBy    string
	SortOrder SortOrder
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindWithFilter retrieves products matching the filter, each joined with
	// its category.
	FindWithFilter(ctx context.Context, filter ProductFilter) ([]*entity.ProductWithCategory, error)

	// Update updates an existing product in the database.
	Update(ctx context.Context, product *entity.Product) error

	// UpdateStatus persists only the derived status of a product.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error

	// Delete removes a product from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindExpiringWithin retrieves products whose expiry date falls within
	// [from, to] and whose persisted status differs from excludeStatus. The
	// status guard is the expiry check's idempotence mechanism.
	FindExpiringWithin(ctx context.Context, from, to time.Time, excludeStatus entity.ProductStatus) ([]*entity.ProductWithCategory, error)

	// FindExpiredBefore retrieves products whose expiry date is before now and
	// whose persisted status differs from excludeStatus.
	FindExpiredBefore(ctx context.Context, now time.Time, excludeStatus entity.ProductStatus) ([]*entity.ProductWithCategory, error)
}
