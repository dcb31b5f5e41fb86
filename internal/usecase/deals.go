package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/cache"
)

// Cache keys for the dataset snapshot.
const (
	DatasetFlightsKey  = "dataset:flights:active"
	DatasetAirlinesKey = "dataset:airlines"
	DatasetAirportsKey = "dataset:airports"
)

// Defaults for DealsConfig.
const (
	DefaultHubAirport = "DAM"
	DefaultDealsLimit = 6
	DefaultCacheTTL   = 5 * time.Minute
)

//go:generate mockgen -source=deals.go -destination=mock_deals.go -package=usecase

// DealsUseCase answers the browse pages (deal cards, search, explore calendar)
// from the curated flight dataset.
type DealsUseCase interface {
	// Deals returns the cheapest fare per route touching airport, cheapest first.
	Deals(ctx context.Context, airport string, limit int) ([]domain.FareRecord, error)

	// Search runs a hub-relative search followed by the filter/sort pipeline.
	Search(ctx context.Context, q domain.DealsQuery) ([]domain.FareRecord, error)

	// Calendar builds the month's price calendar for flights touching airport.
	Calendar(ctx context.Context, airport string, year, month int, destination string) (domain.PriceCalendar, error)

	// DayFlights lists the flights touching airport that operate on the given date.
	DayFlights(ctx context.Context, airport string, year, month, day int, destination string) ([]domain.FareRecord, error)

	// AirportSummaries returns the cheapest price and destination count per airport.
	AirportSummaries(ctx context.Context, airports []string) ([]domain.AirportSummary, error)

	// RoutePrice returns the cheapest price between airport and any counterpart, nil if none.
	RoutePrice(ctx context.Context, airport string, counterparts []string) (*float64, error)

	// Destinations lists the distinct airports served from or to airport.
	Destinations(ctx context.Context, airport string) ([]string, error)

	Airlines(ctx context.Context) ([]domain.Airline, error)
	Airports(ctx context.Context) ([]domain.Airport, error)
}

// DealsConfig tunes the dataset use case.
type DealsConfig struct {
	// Hub is the airport trip directions are relative to
	Hub string

	// CacheTTL is how long a dataset snapshot is reused
	CacheTTL time.Duration
}

type dealsUseCase struct {
	dataset domain.FlightDataset
	cache   cache.Cache
	hub     string
	ttl     time.Duration
	log     zerolog.Logger
}

// NewDealsUseCase creates a DealsUseCase. Zero config values fall back to defaults.
func NewDealsUseCase(dataset domain.FlightDataset, c cache.Cache, cfg DealsConfig, log zerolog.Logger) DealsUseCase {
	if cfg.Hub == "" {
		cfg.Hub = DefaultHubAirport
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &dealsUseCase{
		dataset: dataset,
		cache:   c,
		hub:     strings.ToUpper(cfg.Hub),
		ttl:     cfg.CacheTTL,
		log:     log.With().Str("component", "deals").Logger(),
	}
}

func (uc *dealsUseCase) Deals(ctx context.Context, airport string, limit int) ([]domain.FareRecord, error) {
	records, err := uc.flights(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultDealsLimit
	}
	return CheapestPerRoute(touching(records, normalizeCode(airport)), limit), nil
}

func (uc *dealsUseCase) Search(ctx context.Context, q domain.DealsQuery) ([]domain.FareRecord, error) {
	records, err := uc.flights(ctx)
	if err != nil {
		return nil, err
	}

	hub := normalizeCode(q.Hub)
	if hub == "" {
		hub = uc.hub
	}
	counterpart := normalizeCode(q.Counterpart)

	scoped := make([]domain.FareRecord, 0, len(records))
	for _, r := range records {
		var near, far string
		if q.Direction == domain.TripToHub {
			near, far = r.DestinationCode, r.OriginCode
		} else {
			near, far = r.OriginCode, r.DestinationCode
		}
		if near != hub {
			continue
		}
		if counterpart != "" && far != counterpart {
			continue
		}
		scoped = append(scoped, r)
	}

	result, rejected := ApplyFilters(scoped, q.Criteria, q.Sort)
	uc.logRejected("search", rejected)
	return result, nil
}

func (uc *dealsUseCase) Calendar(ctx context.Context, airport string, year, month int, destination string) (domain.PriceCalendar, error) {
	records, err := uc.flights(ctx)
	if err != nil {
		return domain.PriceCalendar{}, err
	}
	return BuildPriceCalendar(touching(records, normalizeCode(airport)), year, month, normalizeCode(destination))
}

func (uc *dealsUseCase) DayFlights(ctx context.Context, airport string, year, month, day int, destination string) ([]domain.FareRecord, error) {
	records, err := uc.flights(ctx)
	if err != nil {
		return nil, err
	}
	scoped := touching(records, normalizeCode(airport))
	if dest := normalizeCode(destination); dest != "" {
		scoped = touching(scoped, dest)
	}
	return FlightsOnDay(scoped, year, month, day)
}

func (uc *dealsUseCase) AirportSummaries(ctx context.Context, airports []string) ([]domain.AirportSummary, error) {
	records, err := uc.flights(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AirportSummary, 0, len(airports))
	for _, code := range airports {
		if code = normalizeCode(code); code == "" {
			continue
		}
		out = append(out, MinPriceAndDestinationCount(records, code))
	}
	return out, nil
}

func (uc *dealsUseCase) RoutePrice(ctx context.Context, airport string, counterparts []string) (*float64, error) {
	records, err := uc.flights(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(counterparts))
	for _, c := range counterparts {
		if c = normalizeCode(c); c != "" {
			codes = append(codes, c)
		}
	}
	return MinPriceForRoute(records, normalizeCode(airport), codes), nil
}

func (uc *dealsUseCase) Destinations(ctx context.Context, airport string) ([]string, error) {
	records, err := uc.flights(ctx)
	if err != nil {
		return nil, err
	}
	return Destinations(records, normalizeCode(airport)), nil
}

func (uc *dealsUseCase) Airlines(ctx context.Context) ([]domain.Airline, error) {
	return cachedLoad(ctx, uc, DatasetAirlinesKey, uc.dataset.ListAirlines)
}

func (uc *dealsUseCase) Airports(ctx context.Context) ([]domain.Airport, error) {
	return cachedLoad(ctx, uc, DatasetAirportsKey, uc.dataset.ListAirports)
}

// flights returns the normalized active flights, from cache when fresh.
func (uc *dealsUseCase) flights(ctx context.Context) ([]domain.FareRecord, error) {
	return cachedLoad(ctx, uc, DatasetFlightsKey, func(ctx context.Context) ([]domain.FareRecord, error) {
		rows, err := uc.dataset.ListFlights(ctx, true)
		if err != nil {
			return nil, err
		}
		records, rejected := Normalize(domain.FromDataset(rows))
		uc.logRejected("normalize", rejected)
		return records, nil
	})
}

// cachedLoad reads key from the cache or calls load and stores the result.
// Cache failures are logged and never fail the request.
func cachedLoad[T any](ctx context.Context, uc *dealsUseCase, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if uc.cache != nil {
		cached, ok, err := cache.GetJSON[[]T](ctx, uc.cache, key)
		if err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		if ok {
			return cached, nil
		}
		uc.log.Debug().Str("key", key).Msg("cache miss")
	}

	items, err := load(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("key", key).Msg("dataset load failed")
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	if uc.cache != nil {
		if err := cache.SetJSON(ctx, uc.cache, key, items, uc.ttl); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return items, nil
}

func (uc *dealsUseCase) logRejected(stage string, rejected []*domain.FormatError) {
	logRejected(uc.log, stage, rejected)
}

// logRejected logs each dropped record at warn plus one error line for the batch.
func logRejected(log zerolog.Logger, stage string, rejected []*domain.FormatError) {
	if len(rejected) == 0 {
		return
	}
	for _, r := range rejected {
		log.Warn().
			Str("stage", stage).
			Str("record_id", r.RecordID).
			Str("field", r.Field).
			Str("reason", r.Reason).
			Msg("record rejected")
	}
	log.Error().Str("stage", stage).Int("rejected", len(rejected)).Msg("malformed records dropped")
}

// touching keeps the records with airport at either end. An empty airport keeps all.
func touching(records []domain.FareRecord, airport string) []domain.FareRecord {
	if airport == "" {
		return records
	}
	out := make([]domain.FareRecord, 0, len(records))
	for _, r := range records {
		if r.Touches(airport) {
			out = append(out, r)
		}
	}
	return out
}
