package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

var fastConfig = Config{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2.0,
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	calls := 0
	var retried []int
	cfg := fastConfig.WithOnRetry(func(attempt int, _ error) { retried = append(retried, attempt) })

	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	}, cfg)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_MaxAttemptsExceeded(t *testing.T) {
	calls := 0
	wantErr := errors.New("still failing")

	err := Do(context.Background(), func() error {
		calls++
		return wantErr
	}, fastConfig)

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, calls)
}

func TestDo_ZeroMaxAttempts(t *testing.T) {
	calls := 0
	_ = Do(context.Background(), func() error {
		calls++
		return errors.New("fail")
	}, fastConfig.WithMaxAttempts(0))

	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig.WithInitialDelay(time.Second)
	cfg.MaxDelay = time.Second

	calls := 0
	err := Do(ctx, func() error {
		calls++
		cancel()
		return errors.New("fail")
	}, cfg)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, func() error {
		calls++
		return nil
	}, fastConfig)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestDoWithResult_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	cfg := fastConfig
	cfg.RetryIf = IsRetryableUpstream

	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, domain.NewUpstreamStatusError("searchapi", 400, `{"error":"bad"}`)
	}, cfg)

	assert.True(t, domain.IsUpstream(err))
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_RetriesServerErrors(t *testing.T) {
	calls := 0
	cfg := fastConfig
	cfg.RetryIf = IsRetryableUpstream

	got, err := DoWithResult(context.Background(), func() (string, error) {
		calls++
		if calls == 1 {
			return "", domain.NewUpstreamStatusError("searchapi", 503, "unavailable")
		}
		return "ok", nil
	}, cfg)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)
}

func TestIsRetryableUpstream(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited", domain.NewUpstreamStatusError("searchapi", 429, ""), true},
		{"server error", domain.NewUpstreamStatusError("searchapi", 500, ""), true},
		{"bad gateway wrapped", fmt.Errorf("search: %w", domain.NewUpstreamStatusError("searchapi", 502, "")), true},
		{"client error", domain.NewUpstreamStatusError("searchapi", 401, ""), false},
		{"decode error", domain.NewUpstreamDecodeError("searchapi", errors.New("bad json")), false},
		{"missing key", domain.NewConfigurationError("SEARCHAPI_API_KEY"), false},
		{"validation", domain.NewValidationError("departure_id", "bad"), false},
		{"cancelled", context.Canceled, false},
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), false},
		{"network", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableUpstream(tt.err))
		})
	}
}

func TestSleepTime_RespectsMaxDelay(t *testing.T) {
	for i := 0; i < 20; i++ {
		d := sleepTime(time.Second, 100*time.Millisecond, 0.5)
		assert.Equal(t, 100*time.Millisecond, d)
	}

	d := sleepTime(10*time.Millisecond, time.Second, 0)
	assert.Equal(t, 10*time.Millisecond, d)
}
