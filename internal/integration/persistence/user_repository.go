// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
	"github.com/expire-tracker/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a user by ID with their managed category IDs loaded.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}

	user := userModel.ToEntity()
	managed, err := r.loadManagedCategories(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.ManagedCategoryIDs = managed
	return user, nil
}

// FindByEmail retrieves a user by email (case-insensitive), or nil when
// absent.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	user := userModel.ToEntity()
	managed, err := r.loadManagedCategories(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.ManagedCategoryIDs = managed
	return user, nil
}

// SetManagedCategories replaces a user's managed-category associations.
func (r *userRepository) SetManagedCategories(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Delete(&model.UserCategoryModel{}, "user_id = ?", userID); result.Error != nil {
			return result.Error
		}

		if len(categoryIDs) == 0 {
			return nil
		}

		now := time.Now().UTC()
		assignments := make([]model.UserCategoryModel, len(categoryIDs))
		for i, categoryID := range categoryIDs {
			assignments[i] = model.UserCategoryModel{
				UserID:     userID,
				CategoryID: categoryID,
				CreatedAt:  now,
			}
		}
		return tx.Create(&assignments).Error
	})
}

// loadManagedCategories fetches the category IDs a user manages.
func (r *userRepository) loadManagedCategories(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var assignments []model.UserCategoryModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	ids := make([]uuid.UUID, len(assignments))
	for i := range assignments {
		ids[i] = assignments[i].CategoryID
	}
	return ids, nil
}
