// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

// ProductModel represents the products table in the database. The category
// foreign key cascades on delete so removing a category removes its products.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Barcode     string          `gorm:"type:varchar(64)"`
	Description string          `gorm:"type:text"`
	ExpiryDate  *time.Time      `gorm:"index"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Value       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity. A NULL expiry
// date maps to the zero time, meaning the date is untracked.
func (m *ProductModel) ToEntity() *entity.Product {
	var expiry time.Time
	if m.ExpiryDate != nil {
		expiry = *m.ExpiryDate
	}

	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Barcode:     m.Barcode,
		Description: m.Description,
		ExpiryDate:  expiry,
		Status:      entity.ProductStatus(m.Status),
		CategoryID:  m.CategoryID,
		Value:       m.Value,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithCategory converts the model and its preloaded category relation.
func (m *ProductModel) ToEntityWithCategory() *entity.ProductWithCategory {
	var category *entity.Category
	if m.Category != nil {
		category = m.Category.ToEntity()
	}
	return &entity.ProductWithCategory{
		Product:  m.ToEntity(),
		Category: category,
	}
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	var expiry *time.Time
	if !product.ExpiryDate.IsZero() {
		e := product.ExpiryDate
		expiry = &e
	}

	return &ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Barcode:     product.Barcode,
		Description: product.Description,
		ExpiryDate:  expiry,
		Status:      string(product.Status),
		CategoryID:  product.CategoryID,
		Value:       product.Value,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
