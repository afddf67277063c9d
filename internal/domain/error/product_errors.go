// Package error defines domain-specific errors for the ExpireTracker application.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the system.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNameRequired is returned when a product is created or updated without a name.
	ErrProductNameRequired = errors.New("product name is required")

	// ErrExpiryDateRequired is returned when a product has no expiry date.
	ErrExpiryDateRequired = errors.New("expiry date is required")

	// ErrCategoryRequired is returned when a product references no category.
	ErrCategoryRequired = errors.New("category is required")

	// ErrNotAuthorizedForCategory is returned when a restricted user acts on a
	// product outside their managed categories.
	ErrNotAuthorizedForCategory = errors.New("not authorized for this category")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProductNameRequired ProductErrorCode = "PRD-010001"
	ErrCodeExpiryDateRequired  ProductErrorCode = "PRD-010002"
	ErrCodeCategoryRequired    ProductErrorCode = "PRD-010003"
	ErrCodeProductNotFound     ProductErrorCode = "PRD-010004"
	ErrCodeNotAuthorized       ProductErrorCode = "PRD-010005"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
