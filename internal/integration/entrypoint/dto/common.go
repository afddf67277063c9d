// Package dto defines request and response structures for the API endpoints.
package dto

import "time"

// ErrorResponse is the common error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ReportFailureResponse is the structured error body for report generation
// failures. It replaces the document stream entirely, so clients always get
// either a whole PDF or a whole error.
type ReportFailureResponse struct {
	Message   string    `json:"message"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
