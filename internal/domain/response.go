package domain

// AirportSummary is the teaser shown for an airport on the explore entry page.
type AirportSummary struct {
	// AirportCode is the airport the summary is about
	AirportCode string `json:"airportCode"`

	// MinPrice is the cheapest known fare touching the airport; 0 means "show nothing"
	MinPrice float64 `json:"minPrice"`

	// DestinationCount is the number of distinct airports served from/to AirportCode
	DestinationCount int `json:"destinationCount"`
}

// BookingResolution is where the traveller is sent after choosing a fare.
type BookingResolution struct {
	// URL is the cheapest booking option link, or a generic search link
	URL string `json:"url"`

	// Fallback is true when URL is the generic search link
	Fallback bool `json:"fallback"`

	// Price is the chosen option's price; nil on fallback
	Price *float64 `json:"price,omitempty"`
}

// TripDirection says whether the hub airport is the origin or the destination.
type TripDirection string

// Trip directions.
const (
	TripFromHub TripDirection = "from"
	TripToHub   TripDirection = "to"
)

// DealsQuery is a dataset search relative to a hub airport.
type DealsQuery struct {
	// Hub is the airport the search is anchored on (e.g. "DAM")
	Hub string

	// Direction selects flights leaving or reaching the hub
	Direction TripDirection

	// Counterpart optionally narrows to one airport at the other end
	Counterpart string

	// Criteria and Sort are applied by the filter/sort pipeline
	Criteria FilterCriteria
	Sort     SortKey
}
