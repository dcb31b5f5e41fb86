// Package mock provides test doubles for the flight deals service.
// These fakes are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// Searcher is a configurable fake implementation of domain.FareSearcher.
// It supports configurable delays, errors, and responses for testing
// caching, call sharing, and upstream failure scenarios.
type Searcher struct {
	offers         []domain.LiveOffer
	bookingOptions []domain.BookingOption
	err            error
	bookingErr     error
	delay          time.Duration

	searchCalls  int
	bookingCalls int
	lastParams   domain.LiveSearchParams
	mu           sync.Mutex
}

// NewSearcher creates a new fake searcher returning no offers.
// The searcher is configured using the builder pattern methods.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// WithOffers configures the searcher to return the given offers as best flights.
func (s *Searcher) WithOffers(offers []domain.LiveOffer) *Searcher {
	s.offers = offers
	return s
}

// WithBookingOptions configures the booking options returned for any token.
func (s *Searcher) WithBookingOptions(options []domain.BookingOption) *Searcher {
	s.bookingOptions = options
	return s
}

// WithError configures SearchFlights to fail with err.
func (s *Searcher) WithError(err error) *Searcher {
	s.err = err
	return s
}

// WithBookingError configures GetBookingOptions to fail with err.
func (s *Searcher) WithBookingError(err error) *Searcher {
	s.bookingErr = err
	return s
}

// WithDelay configures the searcher to wait the given duration before responding.
func (s *Searcher) WithDelay(d time.Duration) *Searcher {
	s.delay = d
	return s
}

// SearchFlights implements domain.FareSearcher.
// The returned Raw body is a search API document with the offers under best_flights.
func (s *Searcher) SearchFlights(ctx context.Context, params domain.LiveSearchParams) (*domain.LiveSearchResult, error) {
	s.mu.Lock()
	s.searchCalls++
	s.lastParams = params
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}

	offers := s.offers
	if offers == nil {
		offers = []domain.LiveOffer{}
	}
	body, err := json.Marshal(map[string]interface{}{
		"search_parameters": params,
		"best_flights":      offers,
		"other_flights":     []domain.LiveOffer{},
	})
	if err != nil {
		return nil, err
	}
	return domain.ParseLiveSearchBody(body)
}

// GetBookingOptions implements domain.FareSearcher.
func (s *Searcher) GetBookingOptions(ctx context.Context, req domain.BookingOptionsRequest) ([]domain.BookingOption, error) {
	s.mu.Lock()
	s.bookingCalls++
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.bookingErr != nil {
		return nil, s.bookingErr
	}
	return s.bookingOptions, nil
}

func (s *Searcher) wait(ctx context.Context) error {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return ctx.Err()
}

// SearchCalls returns the number of times SearchFlights was called.
func (s *Searcher) SearchCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchCalls
}

// BookingCalls returns the number of times GetBookingOptions was called.
func (s *Searcher) BookingCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookingCalls
}

// LastParams returns the parameters of the most recent search.
func (s *Searcher) LastParams() domain.LiveSearchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastParams
}

// Reset resets the call counters to zero.
func (s *Searcher) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchCalls = 0
	s.bookingCalls = 0
}

// Ensure Searcher implements domain.FareSearcher at compile time.
var _ domain.FareSearcher = (*Searcher)(nil)

// SampleOffers returns count direct offers from origin to destination on date.
// Offer i costs 150 + 25*i USD and departs at 06:00 + 2h*i.
func SampleOffers(origin, destination, date string, count int) []domain.LiveOffer {
	offers := make([]domain.LiveOffer, count)
	for i := 0; i < count; i++ {
		price := 150 + float64(i*25)
		dep := fmt.Sprintf("%s %02d:00", date, 6+i*2)
		arr := fmt.Sprintf("%s %02d:30", date, 8+i*2)
		offers[i] = domain.LiveOffer{
			Flights: []domain.LiveSegment{{
				DepartureAirport: domain.LiveAirportTime{ID: origin, Time: dep},
				ArrivalAirport:   domain.LiveAirportTime{ID: destination, Time: arr},
				Duration:         150,
				Airline:          sampleAirlines[i%len(sampleAirlines)].name,
				FlightNumber:     fmt.Sprintf("%s %d", sampleAirlines[i%len(sampleAirlines)].code, 100+i),
			}},
			TotalDuration: 150,
			Price:         domain.Price(price),
			Type:          "One way",
			BookingToken:  fmt.Sprintf("token-%s-%s-%d", origin, destination, i+1),
		}
	}
	return offers
}

var sampleAirlines = []struct{ code, name string }{
	{"RB", "Syrian Air"},
	{"6Q", "Cham Wings"},
	{"PC", "Pegasus"},
}

// SampleBookingOption returns a booking option priced price that opens url.
func SampleBookingOption(price float64, url string) domain.BookingOption {
	return domain.BookingOption{
		Price:          price,
		BookingRequest: domain.BookingRequest{URL: url},
	}
}
