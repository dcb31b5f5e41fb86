package http

import (
	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// FareDTO is one fare as returned by the versioned API.
type FareDTO struct {
	ID            string      `json:"id"`
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
	Airline       AirlineDTO  `json:"airline"`
	FlightNumber  string      `json:"flightNumber,omitempty"`
	DepartureTime string      `json:"departureTime"`
	ArrivalTime   string      `json:"arrivalTime,omitempty"`
	Duration      DurationDTO `json:"duration"`
	Stops         int         `json:"stops"`
	Price         PriceDTO    `json:"price"`
	DaysOfWeek    []int       `json:"daysOfWeek,omitempty"`
	BookingToken  string      `json:"bookingToken,omitempty"`
	Source        string      `json:"source"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DurationDTO represents flight duration.
type DurationDTO struct {
	TotalMinutes int    `json:"totalMinutes"`
	Formatted    string `json:"formatted"`
}

// PriceDTO represents price information. Amount is null for "call for price" fares.
type PriceDTO struct {
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}

// FaresResponseDTO wraps a list of fares.
type FaresResponseDTO struct {
	Total   int       `json:"total"`
	Flights []FareDTO `json:"flights"`
}

// CalendarResponseDTO is the month view of the explore page.
type CalendarResponseDTO struct {
	Airport     string               `json:"airport"`
	Destination string               `json:"destination,omitempty"`
	Calendar    domain.PriceCalendar `json:"calendar"`
}

// DayFlightsResponseDTO lists the flights of one calendar day.
type DayFlightsResponseDTO struct {
	Airport string    `json:"airport"`
	Date    string    `json:"date"`
	Total   int       `json:"total"`
	Flights []FareDTO `json:"flights"`
}

// AirportSummaryDTO is one airport teaser of the explore entry page.
type AirportSummaryDTO struct {
	AirportCode      string   `json:"airportCode"`
	Label            string   `json:"label,omitempty"`
	AirportName      string   `json:"airportName,omitempty"`
	MinPrice         *float64 `json:"minPrice"`
	DestinationCount int      `json:"destinationCount"`
}

// SummaryResponseDTO wraps the airport teasers.
type SummaryResponseDTO struct {
	Airports []AirportSummaryDTO `json:"airports"`
}

// DestinationsResponseDTO lists the counterparts of an airport.
type DestinationsResponseDTO struct {
	Airport      string   `json:"airport"`
	Destinations []string `json:"destinations"`
}

// RoutePriceResponseDTO is the cheapest price between an airport and a set of counterparts.
type RoutePriceResponseDTO struct {
	Airport string   `json:"airport"`
	To      []string `json:"to"`
	Price   *float64 `json:"price"`
}

// AirlinesResponseDTO lists the active airlines.
type AirlinesResponseDTO struct {
	Airlines []domain.Airline `json:"airlines"`
}

// AirportsResponseDTO lists the active destinations.
type AirportsResponseDTO struct {
	Airports []domain.Airport `json:"airports"`
}

// LocateResponseDTO is the airport a visitor most likely departs from.
type LocateResponseDTO struct {
	Airport string `json:"airport"`
	Label   string `json:"label,omitempty"`
}

// BookingOptionsResponseDTO is the proxy's booking options body.
type BookingOptionsResponseDTO struct {
	BookingOptions []domain.BookingOption `json:"booking_options"`
}
