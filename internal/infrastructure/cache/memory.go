package cache

import (
	"context"
	"sync"
	"time"

	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/timeutil"
)

type entry struct {
	value  []byte
	expiry time.Time
}

// Memory is a process-local Cache. Values are copied on the way in and out.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   timeutil.Clock
}

// NewMemory creates an empty in-memory cache. A nil clock uses the system time.
func NewMemory(clock timeutil.Clock) *Memory {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Memory{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

// Get implements Cache.
func (c *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !c.clock.Now().Before(e.expiry) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if cur, still := c.entries[key]; still && !c.clock.Now().Before(cur.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return cloneBytes(e.value), true, nil
}

// Set implements Cache.
func (c *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	c.entries[key] = entry{value: cloneBytes(value), expiry: c.clock.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Delete implements Cache.
func (c *Memory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

var _ Cache = (*Memory)(nil)
