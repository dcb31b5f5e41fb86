package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("outbound_date", "Invalid outbound_date: must be YYYY-MM-DD")

	assert.Equal(t, "outbound_date: Invalid outbound_date: must be YYYY-MM-DD", err.Error())
	assert.True(t, IsInvalidRequest(err))
	assert.True(t, IsInvalidRequest(fmt.Errorf("handler: %w", err)))
	assert.False(t, IsUpstream(err))
}

func TestUpstreamError(t *testing.T) {
	status := NewUpstreamStatusError("searchapi", 503, "Service Unavailable")
	assert.Equal(t, "searchapi returned status 503: Service Unavailable", status.Error())
	assert.True(t, IsUpstream(status))
	assert.True(t, status.Retryable())

	cause := errors.New("unexpected EOF")
	decode := NewUpstreamDecodeError("searchapi", cause)
	assert.Equal(t, "searchapi: unexpected EOF", decode.Error())
	assert.True(t, IsUpstream(decode))
	assert.ErrorIs(t, decode, cause)
	assert.False(t, decode.Retryable())

	var target *UpstreamError
	require.ErrorAs(t, fmt.Errorf("live search: %w", status), &target)
	assert.Equal(t, 503, target.StatusCode)
}

func TestUpstreamError_Retryable(t *testing.T) {
	tests := map[int]bool{400: false, 401: false, 404: false, 429: true, 500: true, 502: true}
	for code, want := range tests {
		assert.Equal(t, want, NewUpstreamStatusError("searchapi", code, "").Retryable(), code)
	}
}

func TestFormatError(t *testing.T) {
	err := NewFormatError("f-12", "departureTime", "malformed time")
	assert.Equal(t, `record "f-12": departureTime: malformed time`, err.Error())
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("SEARCHAPI_API_KEY")
	assert.Equal(t, "missing configuration: SEARCHAPI_API_KEY", err.Error())
	assert.True(t, IsConfiguration(err))
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestWrapInvalidArgument(t *testing.T) {
	err := WrapInvalidArgument("month must be between 1 and 12, got %d", 13)
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, "invalid argument: month must be between 1 and 12, got 13", err.Error())
}
