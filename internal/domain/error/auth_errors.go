// Package error defines domain-specific errors for the ExpireTracker application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailExists is returned when registering with an email already in use.
	ErrEmailExists = errors.New("email already registered")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrWeakPassword is returned when a password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password too weak")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (01XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-010003"

	// Credential errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeEmailExists        AuthErrorCode = "AUTH-020002"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-020003"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020004"
	ErrCodeForbidden          AuthErrorCode = "AUTH-020005"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
