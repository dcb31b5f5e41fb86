package domain

import (
	"regexp"
	"strconv"
)

// airportCodeRegex matches IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// MaxAdults caps the passenger count forwarded upstream.
const MaxAdults = 9

// IsAirportCode reports whether s is a 3-letter uppercase airport code.
func IsAirportCode(s string) bool {
	return airportCodeRegex.MatchString(s)
}

// LiveSearchParams are the parameters of a live one-way search.
type LiveSearchParams struct {
	// DepartureID is the origin airport code (e.g. "DAM")
	DepartureID string `json:"departure_id"`

	// ArrivalID is the destination airport code (e.g. "IST")
	ArrivalID string `json:"arrival_id"`

	// OutboundDate is the travel date in YYYY-MM-DD format
	OutboundDate string `json:"outbound_date"`

	// Adults is the passenger count (default 1)
	Adults int `json:"adults,omitempty"`
}

// Validate checks the parameters the way the proxy endpoint does.
// The first failing field is reported.
func (p *LiveSearchParams) Validate() error {
	if err := validateRoute(p.DepartureID, p.ArrivalID, p.OutboundDate); err != nil {
		return err
	}
	if p.Adults < 0 || p.Adults > MaxAdults {
		return NewValidationError("adults", "Invalid adults: must be between 1 and 9")
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *LiveSearchParams) SetDefaults() {
	if p.Adults == 0 {
		p.Adults = 1
	}
}

// CacheKey identifies a search for caching and call de-duplication.
// Upstream prices depend on the passenger count, so Adults is part of the key;
// call SetDefaults first so that 0 and 1 share an entry.
func (p LiveSearchParams) CacheKey() string {
	return "live:" + p.DepartureID + "|" + p.ArrivalID + "|" + p.OutboundDate + "|" + strconv.Itoa(p.Adults)
}

// BookingOptionsRequest asks for firm booking offers for a previously returned fare.
type BookingOptionsRequest struct {
	BookingToken string `json:"booking_token"`
	DepartureID  string `json:"departure_id"`
	ArrivalID    string `json:"arrival_id"`
	OutboundDate string `json:"outbound_date"`
}

// Validate checks the request the way the proxy endpoint does.
func (r *BookingOptionsRequest) Validate() error {
	if r.BookingToken == "" {
		return NewValidationError("booking_token", "Missing booking_token")
	}
	return validateRoute(r.DepartureID, r.ArrivalID, r.OutboundDate)
}

func validateRoute(departureID, arrivalID, outboundDate string) error {
	if !airportCodeRegex.MatchString(departureID) {
		return NewValidationError("departure_id", "Invalid departure_id: must be 3 uppercase letters")
	}
	if !airportCodeRegex.MatchString(arrivalID) {
		return NewValidationError("arrival_id", "Invalid arrival_id: must be 3 uppercase letters")
	}
	if !dateRegex.MatchString(outboundDate) {
		return NewValidationError("outbound_date", "Invalid outbound_date: must be YYYY-MM-DD")
	}
	return nil
}

// RouteDate returns the route and date the booking token was issued for.
func (r BookingOptionsRequest) RouteDate() LiveSearchParams {
	return LiveSearchParams{DepartureID: r.DepartureID, ArrivalID: r.ArrivalID, OutboundDate: r.OutboundDate}
}

// CacheKey identifies a booking options lookup.
func (r BookingOptionsRequest) CacheKey() string {
	return "booking:" + r.DepartureID + "|" + r.ArrivalID + "|" + r.OutboundDate + "|" + r.BookingToken
}
