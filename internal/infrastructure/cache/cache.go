// Package cache provides the query cache shared by the use cases.
// Values are stored as bytes so the in-memory and Redis backends are interchangeable.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache stores byte values under string keys with a time-to-live.
type Cache interface {
	// Get returns the value for key. ok is false on a miss or an expired entry.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value for ttl. A non-positive ttl stores nothing.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key if present.
	Delete(ctx context.Context, key string) error
}

// GetJSON reads key and decodes it into a T.
// An entry that no longer decodes is reported as a miss.
func GetJSON[T any](ctx context.Context, c Cache, key string) (T, bool, error) {
	var out T
	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, false, nil
	}
	return out, true, nil
}

// SetJSON encodes value and stores it under key.
func SetJSON[T any](ctx context.Context, c Cache, key string, value T, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl)
}
