// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
	"github.com/expire-tracker/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByName retrieves a category by its unique name, or nil when absent.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves all categories ordered by name.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// FindWithManagers retrieves every category joined with the restricted users
// that manage it.
func (r *categoryRepository) FindWithManagers(ctx context.Context) ([]*entity.CategoryWithManagers, error) {
	categories, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var assignments []model.UserCategoryModel
	result := r.db.WithContext(ctx).Preload("User").Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	managers := make(map[uuid.UUID][]*entity.User, len(categories))
	for i := range assignments {
		if assignments[i].User == nil {
			continue
		}
		managers[assignments[i].CategoryID] = append(managers[assignments[i].CategoryID], assignments[i].User.ToEntity())
	}

	withManagers := make([]*entity.CategoryWithManagers, len(categories))
	for i, c := range categories {
		withManagers[i] = &entity.CategoryWithManagers{
			Category: c,
			Managers: managers[c.ID],
		}
	}
	return withManagers, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a category from the database. Products and manager
// assignments referencing it go with it; the cascade runs in one transaction
// so a failure leaves everything in place.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Delete(&model.ProductModel{}, "category_id = ?", id); result.Error != nil {
			return result.Error
		}
		if result := tx.Delete(&model.UserCategoryModel{}, "category_id = ?", id); result.Error != nil {
			return result.Error
		}
		if result := tx.Delete(&model.CategoryModel{}, "id = ?", id); result.Error != nil {
			return result.Error
		}
		return nil
	})
}
