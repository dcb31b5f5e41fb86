// Package retry repeats upstream calls with exponential backoff.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts counts the initial attempt; values below 1 mean a single attempt.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between attempts.
	MaxDelay time.Duration

	// Multiplier grows the delay after each retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of the delay at random (0.0 to 1.0).
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt. Nil retries everything.
	RetryIf func(error) bool

	// OnRetry, when set, is called before sleeping with the failed attempt number.
	OnRetry func(attempt int, err error)
}

// UpstreamConfig is tuned for the live search API: few attempts, only on
// rate limiting, 5xx answers and transport failures.
var UpstreamConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
	RetryIf:      IsRetryableUpstream,
}

// IsRetryableUpstream reports whether a failed upstream call may succeed when repeated.
// Client errors (4xx other than 429), decode failures, missing credentials and
// context cancellation are final.
func IsRetryableUpstream(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if domain.IsConfiguration(err) || domain.IsInvalidRequest(err) {
		return false
	}
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		if upstream.StatusCode == 0 {
			// No status: the body arrived but could not be decoded.
			return false
		}
		return upstream.Retryable()
	}
	// Transport-level failure (connection refused, reset, ...).
	return true
}

// Do executes fn until it succeeds, returns a non-retryable error, or attempts run out.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult is Do for functions that return a value.
// The last attempt's result and error are returned when all attempts fail.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr)
		}

		timer := time.NewTimer(sleepTime(delay, cfg.MaxDelay, cfg.JitterFactor))
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

func sleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	d := delay + time.Duration(rand.Float64()*float64(delay)*jitterFactor)
	if maxDelay > 0 && d > maxDelay {
		d = maxDelay
	}
	return d
}

// WithMaxAttempts returns a copy of c with the given attempt count.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy of c with the given initial delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// WithOnRetry returns a copy of c with the given retry hook.
func (c Config) WithOnRetry(fn func(attempt int, err error)) Config {
	c.OnRetry = fn
	return c
}
