package timeutil

import (
	"fmt"
	"sync"
	"time"
)

var locationCache sync.Map

// Timezone names used by the service.
const (
	UTC = "UTC"

	// Damascus is the local time of both Syrian airports (DAM, ALP).
	Damascus = "Asia/Damascus"
)

// DateLayout is the YYYY-MM-DD layout used by the live search API.
const DateLayout = "2006-01-02"

// GetLocation returns a timezone location, loading each name only once.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// LocalLocation returns the Damascus location, or UTC when the tz database lacks it.
func LocalLocation() *time.Location {
	loc, err := GetLocation(Damascus)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CurrentMonth returns the year and 1-based month of clock's time in Damascus.
func CurrentMonth(clock Clock) (year, month int) {
	now := clock.Now().In(LocalLocation())
	return now.Year(), int(now.Month())
}

// Today returns clock's date in Damascus formatted as YYYY-MM-DD.
func Today(clock Clock) string {
	return clock.Now().In(LocalLocation()).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as a calendar date in Damascus.
// Unlike a regex check it rejects impossible dates such as 2024-02-30.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, LocalLocation())
}

// ClearLocationCache clears the cached timezone locations.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
