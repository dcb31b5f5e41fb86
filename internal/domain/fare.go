// Package domain contains the core entities and rules of the flight deals service.
// Entities here are source-agnostic: both the local dataset and the live search API
// are mapped onto them before any aggregation happens.
package domain

// Source identifies where a fare record came from.
type Source string

// Known record sources.
const (
	// SourceDataset marks rows coming from the curated airline/destination/flight dataset.
	SourceDataset Source = "dataset"

	// SourceLive marks offers returned by the live flight search API.
	SourceLive Source = "live"
)

// FareRecord is the canonical shape of one priced, scheduled flight offer.
// It is a value object: operations never mutate a record, they return new slices.
type FareRecord struct {
	// ID is an opaque unique identifier
	ID string `json:"id"`

	// OriginCode is the 3-letter departure airport code (e.g. "DAM")
	OriginCode string `json:"originCode"`

	// DestinationCode is the 3-letter arrival airport code (e.g. "JED")
	DestinationCode string `json:"destinationCode"`

	// AirlineCode is the carrier code (e.g. "RB")
	AirlineCode string `json:"airlineCode"`

	// AirlineName is the display name of the carrier
	AirlineName string `json:"airlineName"`

	// FlightNumber is the marketing flight number, when known
	FlightNumber string `json:"flightNumber,omitempty"`

	// DepartureTime is the local wall-clock departure time, "HH:MM" or "HH:MM:SS"
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local wall-clock arrival time, "HH:MM" or "HH:MM:SS"
	ArrivalTime string `json:"arrivalTime"`

	// DurationMinutes is the total travel time
	DurationMinutes int `json:"durationMinutes"`

	// PriceUSD is the fare in US dollars; nil means "call for price"
	PriceUSD *float64 `json:"priceUsd"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops"`

	// DaysOfWeek lists the ISO weekdays (1=Monday..7=Sunday) the schedule operates on.
	// Empty means there is no recurrence data, not "daily".
	DaysOfWeek []int `json:"daysOfWeek"`

	// BookingToken is the upstream token used to request booking options (live records only)
	BookingToken string `json:"bookingToken,omitempty"`

	// Source tells which collaborator produced the record
	Source Source `json:"source"`
}

// HasPrice reports whether the record carries a known price.
func (f FareRecord) HasPrice() bool {
	return f.PriceUSD != nil
}

// Route returns the record's directed origin-destination key.
func (f FareRecord) Route() RouteKey {
	return RouteKey{Origin: f.OriginCode, Destination: f.DestinationCode}
}

// Touches reports whether the record departs from or arrives at the given airport.
func (f FareRecord) Touches(airportCode string) bool {
	return f.OriginCode == airportCode || f.DestinationCode == airportCode
}

// Counterpart returns the airport at the other end of the record relative to airportCode.
// It returns an empty string when the record does not touch airportCode.
func (f FareRecord) Counterpart(airportCode string) string {
	switch airportCode {
	case f.OriginCode:
		return f.DestinationCode
	case f.DestinationCode:
		return f.OriginCode
	default:
		return ""
	}
}

// OperatesOn reports whether the schedule runs on the given ISO weekday.
func (f FareRecord) OperatesOn(isoWeekday int) bool {
	for _, d := range f.DaysOfWeek {
		if d == isoWeekday {
			return true
		}
	}
	return false
}

// RouteKey is a directed (origin, destination) pair used to group records.
type RouteKey struct {
	Origin      string
	Destination string
}

// String formats the key as "ORG-DST".
func (k RouteKey) String() string {
	return k.Origin + "-" + k.Destination
}

// Price returns a pointer to a copy of v. Handy for building records with known prices.
func Price(v float64) *float64 {
	return &v
}
