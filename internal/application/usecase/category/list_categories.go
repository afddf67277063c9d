package category

import (
	"context"
	"fmt"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Actor *entity.User
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing. Restricted users see only
// their managed categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves the categories visible to the actor.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if input.Actor.IsAdmin() {
		return &ListCategoriesOutput{Categories: categories}, nil
	}

	visible := make([]*entity.Category, 0, len(categories))
	for _, c := range categories {
		if input.Actor.ManagesCategory(c.ID) {
			visible = append(visible, c)
		}
	}

	return &ListCategoriesOutput{Categories: visible}, nil
}
