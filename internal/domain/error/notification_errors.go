// Package error defines domain-specific errors for the ExpireTracker application.
package error

// NotificationErrorCode defines error codes for notification dispatch errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	// ErrCodeTemporaryDispatchFailure marks a dispatch failure that may
	// succeed on a later run.
	ErrCodeTemporaryDispatchFailure NotificationErrorCode = "NTF-010001"
	// ErrCodePermanentDispatchFailure marks a dispatch failure that retrying
	// cannot fix (rejected recipient, invalid payload).
	ErrCodePermanentDispatchFailure NotificationErrorCode = "NTF-010002"
)

// NotificationError represents a notification dispatch error. It is caught
// and logged inside the expiry check job, never propagated to its caller.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
