package usecase

import (
	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// fare builds a valid dataset-style record; tests override the fields they care about.
func fare(id, origin, destination string, price *float64, opts ...func(*domain.FareRecord)) domain.FareRecord {
	r := domain.FareRecord{
		ID:              id,
		OriginCode:      origin,
		DestinationCode: destination,
		AirlineCode:     "RB",
		AirlineName:     "Syrian Air",
		DepartureTime:   "08:00",
		ArrivalTime:     "11:00",
		DurationMinutes: 180,
		PriceUSD:        price,
		DaysOfWeek:      []int{1, 2, 3, 4, 5, 6, 7},
		Source:          domain.SourceDataset,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func withStops(n int) func(*domain.FareRecord) {
	return func(r *domain.FareRecord) { r.Stops = n }
}

func withAirline(code string) func(*domain.FareRecord) {
	return func(r *domain.FareRecord) { r.AirlineCode = code }
}

func withDeparture(hhmm string) func(*domain.FareRecord) {
	return func(r *domain.FareRecord) { r.DepartureTime = hhmm }
}

func withDuration(minutes int) func(*domain.FareRecord) {
	return func(r *domain.FareRecord) { r.DurationMinutes = minutes }
}

func withDays(days ...int) func(*domain.FareRecord) {
	return func(r *domain.FareRecord) { r.DaysOfWeek = days }
}

func ids(records []domain.FareRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

var p = domain.Price
