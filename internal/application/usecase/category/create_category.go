// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Actor *entity.User
	Name  string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation. Categories are admin-only.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute validates and persists a new category.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if !input.Actor.IsAdmin() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeAdminRequired,
			"only admins can create categories",
			domainerror.ErrAdminRequired,
		)
	}

	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	existing, err := uc.categoryRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("category %q already exists", input.Name),
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(input.Name)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
