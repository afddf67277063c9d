package product

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// UpdateProductInput represents the input for updating a product. Nil fields
// are left unchanged.
type UpdateProductInput struct {
	Actor       *entity.User
	ProductID   uuid.UUID
	Name        *string
	Barcode     *string
	Description *string
	ExpiryDate  *time.Time
	CategoryID  *uuid.UUID
	Value       *decimal.Decimal
}

// UpdateProductOutput represents the output of updating a product.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product updates. An expiry date change
// recomputes the cached status before persisting, keeping the status
// invariant without persistence hooks.
type UpdateProductUseCase struct {
	productRepo       adapter.ProductRepository
	categoryRepo      adapter.CategoryRepository
	clock             adapter.Clock
	warningWindowDays int
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(
	productRepo adapter.ProductRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
	warningWindowDays int,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo:       productRepo,
		categoryRepo:      categoryRepo,
		clock:             clock,
		warningWindowDays: warningWindowDays,
	}
}

// Execute applies the changes to the product and persists it.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if !input.Actor.ManagesCategory(product.CategoryID) {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNotAuthorized,
			"not authorized to modify products in this category",
			domainerror.ErrNotAuthorizedForCategory,
		)
	}

	now := uc.clock.Now()

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNameRequired,
				"name must not be empty",
				domainerror.ErrProductNameRequired,
			)
		}
		product.Name = *input.Name
	}
	if input.Barcode != nil {
		product.Barcode = *input.Barcode
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Value != nil {
		product.Value = *input.Value
	}

	if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
		if !input.Actor.ManagesCategory(*input.CategoryID) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeNotAuthorized,
				"not authorized to move products into this category",
				domainerror.ErrNotAuthorizedForCategory,
			)
		}
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}

	if input.ExpiryDate != nil && !input.ExpiryDate.Equal(product.ExpiryDate) {
		if input.ExpiryDate.IsZero() {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeExpiryDateRequired,
				"expiryDate must not be empty",
				domainerror.ErrExpiryDateRequired,
			)
		}
		product.ExpiryDate = *input.ExpiryDate
		product.Status = entity.ClassifyStatus(product.ExpiryDate, now, uc.warningWindowDays)
	}

	product.UpdatedAt = now

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdateProductOutput{Product: product}, nil
}
