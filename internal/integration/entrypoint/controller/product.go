// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/application/usecase/product"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/middleware"
)

// ProductController handles product endpoints.
type ProductController struct {
	createUseCase *product.CreateProductUseCase
	getUseCase    *product.GetProductUseCase
	listUseCase   *product.ListProductsUseCase
	updateUseCase *product.UpdateProductUseCase
	deleteUseCase *product.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	createUseCase *product.CreateProductUseCase,
	getUseCase *product.GetProductUseCase,
	listUseCase *product.ListProductsUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expiryDate format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeExpiryDateRequired),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid categoryId format",
			Code:  string(domainerror.ErrCodeCategoryRequired),
		})
		return
	}

	value := decimal.Zero
	if req.Value != nil {
		value, err = decimal.NewFromString(*req.Value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid value format",
			})
			return
		}
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), product.CreateProductInput{
		Actor:       actor,
		Name:        req.Name,
		Barcode:     req.Barcode,
		Description: req.Description,
		ExpiryDate:  expiryDate,
		CategoryID:  categoryID,
		Value:       value,
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// Get handles GET /products/:id requests.
func (c *ProductController) Get(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), product.GetProductInput{
		Actor:     actor,
		ProductID: productID,
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := product.ListProductsInput{
		Actor:  actor,
		Name:   ctx.Query("name"),
		Status: entity.ProductStatus(ctx.Query("status")),
		SortBy: ctx.Query("sortBy"),
	}

	if categoryIDStr := ctx.Query("categoryId"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid categoryId format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if ctx.Query("sortOrder") == string(adapter.SortDesc) {
		input.SortOrder = adapter.SortDesc
	} else {
		input.SortOrder = adapter.SortAsc
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve products",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Update handles PATCH /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := product.UpdateProductInput{
		Actor:       actor,
		ProductID:   productID,
		Name:        req.Name,
		Barcode:     req.Barcode,
		Description: req.Description,
	}

	if req.ExpiryDate != nil {
		expiryDate, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid expiryDate format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeExpiryDateRequired),
			})
			return
		}
		input.ExpiryDate = &expiryDate
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid categoryId format",
				Code:  string(domainerror.ErrCodeCategoryRequired),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if req.Value != nil {
		value, err := decimal.NewFromString(*req.Value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid value format",
			})
			return
		}
		input.Value = &value
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{
		Actor:     actor,
		ProductID: productID,
	}); err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleProductError maps product and category errors to HTTP responses.
func (c *ProductController) handleProductError(ctx *gin.Context, err error) {
	var prodErr *domainerror.ProductError
	if errors.As(err, &prodErr) {
		ctx.JSON(c.statusCodeFor(prodErr.Code), dto.ErrorResponse{
			Error: prodErr.Message,
			Code:  string(prodErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrProductNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Product not found",
			Code:  string(domainerror.ErrCodeProductNotFound),
		})
		return
	}
	if errors.Is(err, domainerror.ErrCategoryNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Category not found",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeFor maps product error codes to HTTP status codes.
func (c *ProductController) statusCodeFor(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorized:
		return http.StatusForbidden
	case domainerror.ErrCodeProductNameRequired,
		domainerror.ErrCodeExpiryDateRequired,
		domainerror.ErrCodeCategoryRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the common missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
