package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// GetProductInput represents the input for retrieving one product.
type GetProductInput struct {
	Actor     *entity.User
	ProductID uuid.UUID
}

// GetProductOutput represents the output of retrieving one product.
type GetProductOutput struct {
	Product *entity.Product
}

// GetProductUseCase handles retrieval of a single product.
type GetProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewGetProductUseCase creates a new GetProductUseCase instance.
func NewGetProductUseCase(productRepo adapter.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
	}
}

// Execute retrieves the product if the actor's scope covers its category.
func (uc *GetProductUseCase) Execute(ctx context.Context, input GetProductInput) (*GetProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	// Out-of-scope products read as not found rather than forbidden, so
	// restricted users cannot probe for existence.
	if !input.Actor.ManagesCategory(product.CategoryID) {
		return nil, domainerror.ErrProductNotFound
	}

	return &GetProductOutput{Product: product}, nil
}
