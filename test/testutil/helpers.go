// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/timeutil"
)

// ProjectPath returns an absolute path below the module root.
func ProjectPath(t *testing.T, elem ...string) string {
	t.Helper()

	// Get the path to the module root relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(append([]string{projectRoot}, elem...)...)
}

// DatasetPath returns the path of the bundled sample dataset.
func DatasetPath(t *testing.T) string {
	t.Helper()
	return ProjectPath(t, "data", "flights.json")
}

// LoadDatasetJSON loads the bundled sample dataset.
func LoadDatasetJSON(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(DatasetPath(t))
	if err != nil {
		t.Fatalf("Failed to load sample dataset: %v", err)
	}
	return data
}

// MustParseDate parses a date string in YYYY-MM-DD format in Damascus time.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseDate(dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// DamascusNoon returns noon of the given day in Damascus time.
// Useful as a fixed "now" for calendar tests.
func DamascusNoon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, timeutil.LocalLocation())
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for price assertions.
func FloatPtr(f float64) *float64 {
	return &f
}

// StringSlice returns a slice of strings.
// Convenience function for airline filter tests.
func StringSlice(s ...string) []string {
	return s
}
