package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// DeleteProductInput represents the input for deleting a product.
type DeleteProductInput struct {
	Actor     *entity.User
	ProductID uuid.UUID
}

// DeleteProductUseCase handles product deletion.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute removes the product if the actor's scope covers its category.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) error {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return err
	}

	if !input.Actor.ManagesCategory(product.CategoryID) {
		return domainerror.NewProductError(
			domainerror.ErrCodeNotAuthorized,
			"not authorized to delete products in this category",
			domainerror.ErrNotAuthorizedForCategory,
		)
	}

	if err := uc.productRepo.Delete(ctx, product.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
