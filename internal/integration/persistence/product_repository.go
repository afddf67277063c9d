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

// sortColumns maps the exposed sort keys to real column names. Anything not
// in this map falls back to name, so sort input can never reach the query
// builder raw.
var sortColumns = map[string]string{
	"name":       "name",
	"expiryDate": "expiry_date",
	"status":     "status",
	"createdAt":  "created_at",
}

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Create(productModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a product by its ID.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindWithFilter retrieves products matching the filter, each joined with its
// category.
func (r *productRepository) FindWithFilter(ctx context.Context, filter adapter.ProductFilter) ([]*entity.ProductWithCategory, error) {
	query := r.db.WithContext(ctx).Model(&model.ProductModel{}).Preload("Category")

	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.ExpiryAfter != nil {
		query = query.Where("expiry_date >= ?", *filter.ExpiryAfter)
	}
	if filter.ExpiryBefore != nil {
		query = query.Where("expiry_date <= ?", *filter.ExpiryBefore)
	}
	if filter.CategoryScope != nil {
		// An empty non-nil scope must match nothing.
		if len(filter.CategoryScope) == 0 {
			return []*entity.ProductWithCategory{}, nil
		}
		query = query.Where("category_id IN ?", filter.CategoryScope)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if filter.SortOrder == adapter.SortDesc {
		direction = "DESC"
	}
	query = query.Order(column + " " + direction)

	var productModels []model.ProductModel
	if result := query.Find(&productModels); result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.ProductWithCategory, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntityWithCategory()
	}
	return products, nil
}

// Update updates an existing product in the database.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Save(productModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateStatus persists only the derived status of a product.
func (r *productRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}

// Delete removes a product from the database.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindExpiringWithin retrieves products expiring in [from, to] whose persisted
// status differs from excludeStatus.
func (r *productRepository) FindExpiringWithin(ctx context.Context, from, to time.Time, excludeStatus entity.ProductStatus) ([]*entity.ProductWithCategory, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("expiry_date >= ? AND expiry_date <= ?", from, to).
		Where("status <> ?", string(excludeStatus)).
		Order("expiry_date ASC").
		Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.ProductWithCategory, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntityWithCategory()
	}
	return products, nil
}

// FindExpiredBefore retrieves products whose expiry date is before now and
// whose persisted status differs from excludeStatus.
func (r *productRepository) FindExpiredBefore(ctx context.Context, now time.Time, excludeStatus entity.ProductStatus) ([]*entity.ProductWithCategory, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("expiry_date < ?", now).
		Where("status <> ?", string(excludeStatus)).
		Order("expiry_date ASC").
		Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.ProductWithCategory, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntityWithCategory()
	}
	return products, nil
}
