// Package dto defines request and response structures for the API endpoints.
package dto

import (
	"time"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest is the request body for POST /categories.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest is the request body for PATCH /categories/:id.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse is the public representation of a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryListResponse wraps a list of categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a category entity to its response representation.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryListResponse converts category entities to a list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{Categories: responses}
}
