// Package dto defines request and response structures for the API endpoints.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Barcode     string  `json:"barcode"`
	Description string  `json:"description"`
	ExpiryDate  string  `json:"expiryDate" binding:"required"`
	CategoryID  string  `json:"categoryId" binding:"required"`
	Value       *string `json:"value"`
}

// UpdateProductRequest is the request body for PATCH /products/:id. All
// fields are optional; absent fields are left untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Barcode     *string `json:"barcode"`
	Description *string `json:"description"`
	ExpiryDate  *string `json:"expiryDate"`
	CategoryID  *string `json:"categoryId"`
	Value       *string `json:"value"`
}

// ProductResponse is the public representation of a product.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Barcode     string          `json:"barcode,omitempty"`
	Description string          `json:"description,omitempty"`
	ExpiryDate  *time.Time      `json:"expiryDate"`
	Status      string          `json:"status"`
	CategoryID  string          `json:"categoryId"`
	Category    string          `json:"category,omitempty"`
	Value       decimal.Decimal `json:"value"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListResponse wraps a list of products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// ToProductResponse converts a product entity to its response representation.
func ToProductResponse(product *entity.Product) ProductResponse {
	var expiry *time.Time
	if !product.ExpiryDate.IsZero() {
		e := product.ExpiryDate
		expiry = &e
	}
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Barcode:     product.Barcode,
		Description: product.Description,
		ExpiryDate:  expiry,
		Status:      string(product.Status),
		CategoryID:  product.CategoryID.String(),
		Value:       product.Value,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ToProductListResponse converts joined products to a list response.
func ToProductListResponse(products []*entity.ProductWithCategory) ProductListResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p.Product)
		responses[i].Category = p.CategoryName()
	}
	return ProductListResponse{
		Products: responses,
		Total:    len(responses),
	}
}
