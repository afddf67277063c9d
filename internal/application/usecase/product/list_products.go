package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// ListProductsInput represents the input for listing products.
type ListProductsInput struct {
	Actor      *entity.User
	Name       string
	CategoryID *uuid.UUID
	Status     entity.ProductStatus
	SortBy     string
	SortOrder  adapter.SortOrder
}

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Products []*entity.ProductWithCategory
}

// ListProductsUseCase handles product listing scoped to the actor's managed
// categories.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute retrieves the products visible to the actor under the given filter.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	products, err := uc.productRepo.FindWithFilter(ctx, adapter.ProductFilter{
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		Status:        input.Status,
		CategoryScope: input.Actor.CategoryScope(),
		SortBy:        input.SortBy,
		SortOrder:     input.SortOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsOutput{Products: products}, nil
}
