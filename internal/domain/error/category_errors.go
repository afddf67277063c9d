// Package error defines domain-specific errors for the ExpireTracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameRequired is returned when a category is created without a name.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrAdminRequired is returned when a non-admin attempts a category mutation.
	ErrAdminRequired = errors.New("admin role required")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNotFound     CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameExists   CategoryErrorCode = "CAT-010003"
	ErrCodeAdminRequired        CategoryErrorCode = "CAT-010004"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
