// Package product contains product-related use cases.
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

// CreateProductInput represents the input for creating a product.
type CreateProductInput struct {
	Actor       *entity.User
	Name        string
	Barcode     string
	Description string
	ExpiryDate  time.Time
	CategoryID  uuid.UUID
	Value       decimal.Decimal
}

// CreateProductOutput represents the output of creating a product.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation. Status is classified
// explicitly here, at the mutation point, rather than through a persistence
// hook.
type CreateProductUseCase struct {
	productRepo       adapter.ProductRepository
	categoryRepo      adapter.CategoryRepository
	clock             adapter.Clock
	warningWindowDays int
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(
	productRepo adapter.ProductRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
	warningWindowDays int,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:       productRepo,
		categoryRepo:      categoryRepo,
		clock:             clock,
		warningWindowDays: warningWindowDays,
	}
}

// Execute validates the input and persists a new product with its status
// classified as of now.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	if !input.Actor.ManagesCategory(input.CategoryID) {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNotAuthorized,
			"not authorized to add products to this category",
			domainerror.ErrNotAuthorizedForCategory,
		)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	product := entity.NewProduct(
		input.Name,
		input.Barcode,
		input.Description,
		input.ExpiryDate,
		input.CategoryID,
		input.Value,
		now,
		uc.warningWindowDays,
	)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{Product: product}, nil
}

func (uc *CreateProductUseCase) validateInput(input CreateProductInput) error {
	if input.Name == "" {
		return domainerror.NewProductError(
			domainerror.ErrCodeProductNameRequired,
			"name is required",
			domainerror.ErrProductNameRequired,
		)
	}
	if input.ExpiryDate.IsZero() {
		return domainerror.NewProductError(
			domainerror.ErrCodeExpiryDateRequired,
			"expiryDate is required",
			domainerror.ErrExpiryDateRequired,
		)
	}
	if input.CategoryID == uuid.Nil {
		return domainerror.NewProductError(
			domainerror.ErrCodeCategoryRequired,
			"categoryId is required",
			domainerror.ErrCategoryRequired,
		)
	}
	return nil
}
