// Package error defines domain-specific errors for the ExpireTracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportType is returned when a report request names an unknown
	// report type.
	ErrInvalidReportType = errors.New("invalid report type")

	// ErrReportTypeRequired is returned when a report request omits the report type.
	ErrReportTypeRequired = errors.New("report type is required")

	// ErrInvalidDateRange is returned when a report date range ends before it starts.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidSortKey is returned when a report request names an unknown sort key.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrReportGenerationFailed is returned when aggregation or rendering
	// fails before any output has been streamed to the caller.
	ErrReportGenerationFailed = errors.New("report generation failed")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeReportTypeRequired ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportType  ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateRange   ReportErrorCode = "RPT-010003"
	ErrCodeInvalidSortKey     ReportErrorCode = "RPT-010004"

	// Generation errors (02XXXX)
	ErrCodeGenerationFailed ReportErrorCode = "RPT-020001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether the error is a user-correctable report
// validation error rather than an internal generation failure.
func (e *ReportError) IsValidationError() bool {
	switch e.Code {
	case ErrCodeReportTypeRequired, ErrCodeInvalidReportType, ErrCodeInvalidDateRange, ErrCodeInvalidSortKey:
		return true
	}
	return false
}
