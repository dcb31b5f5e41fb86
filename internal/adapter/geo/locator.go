// Package geo guesses the Syrian airport a visitor most likely flies from.
package geo

import (
	"net/http"
	"strings"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// City headers set by edge proxies, checked in order.
var cityHeaders = []string{"CF-IPCity", "X-Geo-City", "X-AppEngine-City"}

// DefaultCityAirports maps city names (lower case, English and Arabic) to airports.
var DefaultCityAirports = map[string]string{
	"damascus": "DAM",
	"دمشق":     "DAM",
	"aleppo":   "ALP",
	"halab":    "ALP",
	"حلب":      "ALP",
	"idlib":    "ALP",
	"إدلب":     "ALP",
	"hama":     "DAM",
	"homs":     "DAM",
}

// HeaderLocator reads the explicit "from" query parameter, then the edge city
// headers, then falls back to a fixed airport.
type HeaderLocator struct {
	fallback string
	cities   map[string]string
	allowed  map[string]struct{}
}

// NewHeaderLocator creates a locator that answers fallback when nothing matches.
// Only airports in allowed (plus fallback) are ever returned.
func NewHeaderLocator(fallback string, allowed []string) *HeaderLocator {
	l := &HeaderLocator{
		fallback: strings.ToUpper(fallback),
		cities:   DefaultCityAirports,
		allowed:  map[string]struct{}{strings.ToUpper(fallback): {}},
	}
	for _, code := range allowed {
		l.allowed[strings.ToUpper(code)] = struct{}{}
	}
	return l
}

// DetectUserAirport implements domain.AirportLocator.
func (l *HeaderLocator) DetectUserAirport(r *http.Request) string {
	if code := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("from"))); domain.IsAirportCode(code) && l.isAllowed(code) {
		return code
	}

	for _, h := range cityHeaders {
		city := strings.ToLower(strings.TrimSpace(r.Header.Get(h)))
		if city == "" {
			continue
		}
		if code, ok := l.cities[city]; ok && l.isAllowed(code) {
			return code
		}
	}
	return l.fallback
}

func (l *HeaderLocator) isAllowed(code string) bool {
	_, ok := l.allowed[code]
	return ok
}

var _ domain.AirportLocator = (*HeaderLocator)(nil)
