package usecase

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/cache"
)

// GoogleFlightsBaseURL is the generic search page used when no booking option is usable.
const GoogleFlightsBaseURL = "https://www.google.com/travel/flights"

// sharedCallTimeout bounds an upstream call shared between callers. The call no
// longer follows any single caller's context, so it needs its own deadline.
const sharedCallTimeout = time.Minute

//go:generate mockgen -source=live.go -destination=mock_live.go -package=usecase

// LiveSearchUseCase fronts the third-party live search API.
type LiveSearchUseCase interface {
	// SearchRaw returns the upstream search body untouched.
	SearchRaw(ctx context.Context, params domain.LiveSearchParams) (json.RawMessage, error)

	// Search returns live offers as fare records, filtered and sorted.
	Search(ctx context.Context, params domain.LiveSearchParams, criteria domain.FilterCriteria, sortKey domain.SortKey) ([]domain.FareRecord, error)

	// BookingOptions returns the upstream booking options, never nil.
	BookingOptions(ctx context.Context, req domain.BookingOptionsRequest) ([]domain.BookingOption, error)

	// ResolveBooking picks the link a traveller should open for a fare.
	// Upstream failures fall back to a generic search link instead of an error.
	ResolveBooking(ctx context.Context, req domain.BookingOptionsRequest) (domain.BookingResolution, error)
}

type liveSearchUseCase struct {
	searcher domain.FareSearcher
	cache    cache.Cache
	ttl      time.Duration
	group    singleflight.Group
	log      zerolog.Logger
}

// NewLiveSearchUseCase creates a LiveSearchUseCase. A nil cache or non-positive ttl
// disables caching; identical concurrent calls are still collapsed.
func NewLiveSearchUseCase(searcher domain.FareSearcher, c cache.Cache, ttl time.Duration, log zerolog.Logger) LiveSearchUseCase {
	return &liveSearchUseCase{
		searcher: searcher,
		cache:    c,
		ttl:      ttl,
		log:      log.With().Str("component", "live").Logger(),
	}
}

func (uc *liveSearchUseCase) SearchRaw(ctx context.Context, params domain.LiveSearchParams) (json.RawMessage, error) {
	result, err := uc.search(ctx, params)
	if err != nil {
		return nil, err
	}
	return result.Raw, nil
}

func (uc *liveSearchUseCase) Search(ctx context.Context, params domain.LiveSearchParams, criteria domain.FilterCriteria, sortKey domain.SortKey) ([]domain.FareRecord, error) {
	result, err := uc.search(ctx, params)
	if err != nil {
		return nil, err
	}

	records, rejected := Normalize(domain.FromLive(result.Offers))
	logRejected(uc.log, "normalize", rejected)

	filtered, rejected := ApplyFilters(records, criteria, sortKey)
	logRejected(uc.log, "search", rejected)
	return filtered, nil
}

func (uc *liveSearchUseCase) BookingOptions(ctx context.Context, req domain.BookingOptionsRequest) ([]domain.BookingOption, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := req.CacheKey()
	if raw, ok := uc.cached(ctx, key); ok {
		if options, err := domain.ParseBookingOptionsBody(raw); err == nil {
			return options, nil
		}
	}

	v, _, err := uc.shared(ctx, key, func(callCtx context.Context) (interface{}, error) {
		options, err := uc.searcher.GetBookingOptions(callCtx, req)
		if err != nil {
			return nil, err
		}
		if options == nil {
			options = []domain.BookingOption{}
		}
		if body, err := json.Marshal(map[string][]domain.BookingOption{"booking_options": options}); err == nil {
			uc.store(callCtx, key, body)
		}
		return options, nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("route", req.DepartureID+"-"+req.ArrivalID).Msg("booking options failed")
		return nil, err
	}
	return v.([]domain.BookingOption), nil
}

func (uc *liveSearchUseCase) ResolveBooking(ctx context.Context, req domain.BookingOptionsRequest) (domain.BookingResolution, error) {
	if err := req.Validate(); err != nil {
		return domain.BookingResolution{}, err
	}

	options, err := uc.BookingOptions(ctx, req)
	if err != nil || len(options) == 0 {
		if err == nil {
			uc.log.Info().Str("route", req.DepartureID+"-"+req.ArrivalID).Msg("no booking options, using fallback link")
		}
		return domain.BookingResolution{
			URL:      GoogleFlightsURL(req.DepartureID, req.ArrivalID, req.OutboundDate),
			Fallback: true,
		}, nil
	}

	cheapest := options[0]
	for _, opt := range options[1:] {
		if opt.Price < cheapest.Price {
			cheapest = opt
		}
	}
	price := cheapest.Price
	return domain.BookingResolution{URL: cheapest.URL(), Price: &price}, nil
}

// search validates params and returns the upstream result, sharing one call
// between identical concurrent searches and reusing cached bodies.
func (uc *liveSearchUseCase) search(ctx context.Context, params domain.LiveSearchParams) (*domain.LiveSearchResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params.SetDefaults()

	key := params.CacheKey()
	if raw, ok := uc.cached(ctx, key); ok {
		if result, err := domain.ParseLiveSearchBody(raw); err == nil {
			return result, nil
		}
	}

	v, joined, err := uc.shared(ctx, key, func(callCtx context.Context) (interface{}, error) {
		result, err := uc.searcher.SearchFlights(callCtx, params)
		if err != nil {
			return nil, err
		}
		uc.store(callCtx, key, result.Raw)
		return result, nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("key", key).Msg("live search failed")
		return nil, err
	}
	if joined {
		uc.log.Debug().Str("key", key).Msg("live search shared with concurrent caller")
	}
	return v.(*domain.LiveSearchResult), nil
}

// shared runs fn once for all concurrent callers of key. fn gets a context that keeps
// the first caller's values but not its cancellation, so a caller that goes away does
// not fail the others. Each caller stops waiting when its own ctx is done.
func (uc *liveSearchUseCase) shared(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, bool, error) {
	ch := uc.group.DoChan(key, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedCallTimeout)
		defer cancel()
		return fn(callCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

func (uc *liveSearchUseCase) cached(ctx context.Context, key string) ([]byte, bool) {
	if uc.cache == nil || uc.ttl <= 0 {
		return nil, false
	}
	raw, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil, false
	}
	if !ok {
		uc.log.Debug().Str("key", key).Msg("cache miss")
	}
	return raw, ok
}

func (uc *liveSearchUseCase) store(ctx context.Context, key string, body []byte) {
	if uc.cache == nil || uc.ttl <= 0 || len(body) == 0 {
		return
	}
	if err := uc.cache.Set(ctx, key, body, uc.ttl); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// GoogleFlightsURL builds a one-way Google Flights search for the route and date.
func GoogleFlightsURL(departureID, arrivalID, outboundDate string) string {
	q := url.Values{}
	q.Set("q", "Flights to "+arrivalID+" from "+departureID+" on "+outboundDate+" oneway")
	return GoogleFlightsBaseURL + "?" + q.Encode()
}
