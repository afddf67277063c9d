package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	Actor      *entity.User
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion. Deleting a category
// cascades to all products referencing it.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute removes the category and its products.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if !input.Actor.IsAdmin() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeAdminRequired,
			"only admins can delete categories",
			domainerror.ErrAdminRequired,
		)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return err
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
