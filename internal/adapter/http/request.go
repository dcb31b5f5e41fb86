// Package http provides the HTTP handler layer for the flight deals API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/timeutil"
)

// Validation regex patterns.
var (
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	airlinePattern = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)
)

// Valid sort options; empty defaults to price.
var validSortOptions = map[string]bool{
	"price":     true,
	"duration":  true,
	"departure": true,
	"":          true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

func (v *ValidationErrors) orNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// LiveSearchRequest is the body of POST /api/v1/live/search.
type LiveSearchRequest struct {
	// DepartureID is the origin airport code (e.g. "DAM")
	DepartureID string `json:"departure_id" example:"DAM"`

	// ArrivalID is the destination airport code (e.g. "IST")
	ArrivalID string `json:"arrival_id" example:"IST"`

	// OutboundDate is the travel date in YYYY-MM-DD format
	OutboundDate string `json:"outbound_date" example:"2026-11-20"`

	// Adults is the passenger count (1-9, default 1)
	Adults int `json:"adults,omitempty" example:"1"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy is one of price, duration, departure
	SortBy string `json:"sortBy,omitempty" example:"price"`
}

// FilterDTO represents optional filters for fare results.
type FilterDTO struct {
	// Airlines keeps only these carrier codes
	Airlines []string `json:"airlines,omitempty" example:"RB,FZ"`

	// MaxPrice drops fares above this USD amount, and unpriced fares
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"300"`

	// DirectOnly keeps only zero-stop itineraries
	DirectOnly bool `json:"directOnly,omitempty"`

	// Destination keeps fares touching this airport at either end
	Destination string `json:"destination,omitempty" example:"IST"`
}

// Validate checks the request, normalizing codes to uppercase.
func (r *LiveSearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.DepartureID = validateAirportCode(errs, "departure_id", r.DepartureID, true)
	r.ArrivalID = validateAirportCode(errs, "arrival_id", r.ArrivalID, true)
	if r.DepartureID != "" && r.DepartureID == r.ArrivalID {
		errs.Add("arrival_id", "arrival_id must differ from departure_id")
	}
	validateDate(errs, "outbound_date", r.OutboundDate)

	if r.Adults < 0 || r.Adults > domain.MaxAdults {
		errs.Add("adults", fmt.Sprintf("adults must be between 1 and %d", domain.MaxAdults))
	}
	validateSortBy(errs, r.SortBy)
	validateFilters(errs, r.Filters)

	return errs.orNil()
}

// ResolveBookingRequest is the body of POST /api/v1/booking/resolve.
type ResolveBookingRequest struct {
	BookingToken string `json:"booking_token" example:"WyJDalJJ..."`
	DepartureID  string `json:"departure_id" example:"DAM"`
	ArrivalID    string `json:"arrival_id" example:"IST"`
	OutboundDate string `json:"outbound_date" example:"2026-11-20"`
}

// Validate checks the request, normalizing codes to uppercase.
func (r *ResolveBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.BookingToken) == "" {
		errs.Add("booking_token", "booking_token is required")
	}
	r.DepartureID = validateAirportCode(errs, "departure_id", r.DepartureID, true)
	r.ArrivalID = validateAirportCode(errs, "arrival_id", r.ArrivalID, true)
	validateDate(errs, "outbound_date", r.OutboundDate)

	return errs.orNil()
}

func validateAirportCode(errs *ValidationErrors, field, value string, required bool) string {
	code := strings.ToUpper(strings.TrimSpace(value))
	if code == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return ""
	}
	if !domain.IsAirportCode(code) {
		errs.Add(field, field+" must be a 3-letter airport code")
	}
	return code
}

func validateDate(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, field+" is required")
		return
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := timeutil.ParseDate(value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

func validateSortBy(errs *ValidationErrors, sortBy string) {
	if !validSortOptions[strings.ToLower(strings.TrimSpace(sortBy))] {
		errs.Add("sortBy", "sortBy must be one of: price, duration, departure")
	}
}

func validateFilters(errs *ValidationErrors, f *FilterDTO) {
	if f == nil {
		return
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must not be negative")
	}
	f.Airlines = validateAirlines(errs, "filters.airlines", f.Airlines)
	f.Destination = validateAirportCode(errs, "filters.destination", f.Destination, false)
}

func validateAirlines(errs *ValidationErrors, field string, airlines []string) []string {
	out := make([]string, 0, len(airlines))
	for i, a := range airlines {
		code := strings.ToUpper(strings.TrimSpace(a))
		if code == "" {
			continue
		}
		if !airlinePattern.MatchString(code) {
			errs.Add(fmt.Sprintf("%s[%d]", field, i), "airline code must be 2 or 3 characters")
		}
		out = append(out, code)
	}
	return out
}

// DatasetSearchQuery holds the query parameters of GET /api/v1/flights.
type DatasetSearchQuery struct {
	Type        string
	Airport     string
	Destination string
	Airlines    []string
	MaxPrice    *float64
	DirectOnly  bool
	SortBy      string
}

// bindDatasetSearchQuery reads and validates GET /api/v1/flights parameters.
func bindDatasetSearchQuery(c echo.Context) (DatasetSearchQuery, error) {
	var (
		q        DatasetSearchQuery
		airlines string
		maxPrice float64
	)
	errs := &ValidationErrors{}

	bindErr := echo.QueryParamsBinder(c).
		String("type", &q.Type).
		String("airport", &q.Airport).
		String("destination", &q.Destination).
		String("airlines", &airlines).
		Float64("maxPrice", &maxPrice).
		Bool("directOnly", &q.DirectOnly).
		String("sortBy", &q.SortBy).
		BindErrors()
	addBindErrors(errs, bindErr)

	switch q.Type = strings.ToLower(strings.TrimSpace(q.Type)); q.Type {
	case "", string(domain.TripFromHub), string(domain.TripToHub):
	default:
		errs.Add("type", "type must be one of: from, to")
	}
	if c.QueryParam("maxPrice") != "" {
		if maxPrice < 0 {
			errs.Add("maxPrice", "maxPrice must not be negative")
		}
		q.MaxPrice = &maxPrice
	}
	q.Airport = validateAirportCode(errs, "airport", q.Airport, false)
	q.Destination = validateAirportCode(errs, "destination", q.Destination, false)
	q.Airlines = validateAirlines(errs, "airlines", splitList(airlines))
	validateSortBy(errs, q.SortBy)

	return q, errs.orNil()
}

// MonthQuery holds the year/month(/day) parameters of the explore endpoints.
type MonthQuery struct {
	Year        int
	Month       int
	Day         int
	Destination string
}

// bindMonthQuery reads year, month and destination. Missing year or month default to the
// current month in Damascus. With withDay set, day is required.
func bindMonthQuery(c echo.Context, clock timeutil.Clock, withDay bool) (MonthQuery, error) {
	var q MonthQuery
	errs := &ValidationErrors{}

	binder := echo.QueryParamsBinder(c).
		Int("year", &q.Year).
		Int("month", &q.Month).
		String("destination", &q.Destination)
	if withDay {
		binder = binder.Int("day", &q.Day)
	}
	addBindErrors(errs, binder.BindErrors())

	year, month := timeutil.CurrentMonth(clock)
	if c.QueryParam("year") == "" {
		q.Year = year
	}
	if c.QueryParam("month") == "" {
		q.Month = month
	}
	if q.Year < 1 {
		errs.Add("year", "year must be positive")
	}
	if q.Month < 1 || q.Month > 12 {
		errs.Add("month", "month must be between 1 and 12")
	}
	if withDay && c.QueryParam("day") == "" {
		errs.Add("day", "day is required")
	}
	q.Destination = validateAirportCode(errs, "destination", q.Destination, false)

	return q, errs.orNil()
}

// pathAirport reads and validates the :airport path parameter.
func pathAirport(c echo.Context) (string, error) {
	errs := &ValidationErrors{}
	code := validateAirportCode(errs, "airport", c.Param("airport"), true)
	return code, errs.orNil()
}

// queryAirports reads a comma-separated list of airport codes.
func queryAirports(c echo.Context, name string) ([]string, error) {
	errs := &ValidationErrors{}
	var codes []string
	for i, raw := range splitList(c.QueryParam(name)) {
		codes = append(codes, validateAirportCode(errs, fmt.Sprintf("%s[%d]", name, i), raw, true))
	}
	return codes, errs.orNil()
}

func addBindErrors(errs *ValidationErrors, bindErrs []error) {
	for _, err := range bindErrs {
		var be *echo.BindingError
		if errors.As(err, &be) {
			errs.Add(be.Field, be.Field+" has an invalid value")
			continue
		}
		errs.Add("query", err.Error())
	}
}

// splitList splits "a,b, c" into trimmed, non-empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
