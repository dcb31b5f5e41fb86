package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers inspect them with errors.Is.
var (
	// ErrInvalidRequest marks malformed caller input at the HTTP boundary.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidArgument marks an out-of-range argument to a core operation (e.g. month 13).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUpstream marks a failed call to a third-party API.
	ErrUpstream = errors.New("upstream error")

	// ErrMissingCredential marks a missing server-side secret.
	ErrMissingCredential = errors.New("missing credential")

	// ErrMalformedRecord marks a single record that cannot be normalized or compared.
	ErrMalformedRecord = errors.New("malformed record")
)

// ValidationError represents a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes every ValidationError match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// UpstreamError is a non-success answer (or an unreadable one) from a third-party API.
// Body carries the upstream payload verbatim for diagnostics.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

// NewUpstreamStatusError creates an UpstreamError for a non-2xx response.
func NewUpstreamStatusError(service string, status int, body string) *UpstreamError {
	return &UpstreamError{Service: service, StatusCode: status, Body: body}
}

// NewUpstreamDecodeError creates an UpstreamError for a body that could not be parsed.
func NewUpstreamDecodeError(service string, err error) *UpstreamError {
	return &UpstreamError{Service: service, Err: err}
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Service, e.Err)
	}
	return e.Service + ": upstream error"
}

// Unwrap returns the underlying cause.
func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUpstream, e.Err}
	}
	return []error{ErrUpstream}
}

// Retryable reports whether repeating the call may succeed.
func (e *UpstreamError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// FormatError reports a single record that was dropped from a batch.
type FormatError struct {
	RecordID string
	Field    string
	Reason   string
}

// NewFormatError creates a new FormatError.
func NewFormatError(recordID, field, reason string) *FormatError {
	return &FormatError{RecordID: recordID, Field: field, Reason: reason}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("record %q: %s: %s", e.RecordID, e.Field, e.Reason)
}

// Unwrap makes every FormatError match ErrMalformedRecord.
func (e *FormatError) Unwrap() error {
	return ErrMalformedRecord
}

// ConfigurationError reports a server-side setting that must be fixed operationally.
type ConfigurationError struct {
	Setting string
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(setting string) *ConfigurationError {
	return &ConfigurationError{Setting: setting}
}

func (e *ConfigurationError) Error() string {
	return "missing configuration: " + e.Setting
}

// Unwrap makes every ConfigurationError match ErrMissingCredential.
func (e *ConfigurationError) Unwrap() error {
	return ErrMissingCredential
}

// WrapInvalidArgument wraps ErrInvalidArgument with a formatted message.
func WrapInvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is a request validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsInvalidArgument checks if the error is an invalid argument to a core operation.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUpstream checks if the error came from a third-party API.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsConfiguration checks if the error is a missing server-side setting.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}
