// Package response provides standardized HTTP response builders for the flight deals API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the error body of the versioned API.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// ProxyError is the error body of the search proxy endpoints.
type ProxyError struct {
	Error string `json:"error"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeNotFound        = "not_found"
	CodeUpstreamError   = "upstream_error"
	CodeMisconfigured   = "misconfigured"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgUpstreamError      = "The flight search provider returned an error"
	MsgMisconfigured      = "Server misconfiguration: missing API key"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Proxy writes a proxy error body with the given status.
func Proxy(c echo.Context, status int, message string) error {
	return c.JSON(status, &ProxyError{Error: message})
}
