package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	Actor      *entity.User
	CategoryID uuid.UUID
	Name       string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category renames. Categories are admin-only.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute renames the category, preserving name uniqueness.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if !input.Actor.IsAdmin() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeAdminRequired,
			"only admins can update categories",
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

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.categoryRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil && existing.ID != category.ID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("category %q already exists", input.Name),
			domainerror.ErrCategoryNameExists,
		)
	}

	category.Name = input.Name
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
