package domain

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=collaborators.go -destination=mock_collaborators.go -package=domain

// FlightDataset is the curated airline/destination/flight store.
type FlightDataset interface {
	// ListFlights returns flight rows joined with airline, origin and destination.
	// With activeOnly set, inactive flights are left out.
	ListFlights(ctx context.Context, activeOnly bool) ([]DatasetRow, error)

	// ListAirlines returns active airlines ordered by name.
	ListAirlines(ctx context.Context) ([]Airline, error)

	// ListAirports returns active destinations ordered by city.
	ListAirports(ctx context.Context) ([]Airport, error)
}

// FareSearcher is the third-party live flight search API.
type FareSearcher interface {
	// SearchFlights runs a one-way economy search.
	SearchFlights(ctx context.Context, params LiveSearchParams) (*LiveSearchResult, error)

	// GetBookingOptions returns firm offers for a booking token.
	GetBookingOptions(ctx context.Context, req BookingOptionsRequest) ([]BookingOption, error)
}

// AirportLocator guesses the airport a visitor most likely departs from.
type AirportLocator interface {
	DetectUserAirport(r *http.Request) string
}
