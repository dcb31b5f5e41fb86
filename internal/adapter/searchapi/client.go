// Package searchapi is the client for the searchapi.io Google Flights engine.
package searchapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/retry"
)

// ServiceName tags errors and log lines coming from this client.
const ServiceName = "searchapi"

// Fixed query parameters of every request.
const (
	engine      = "google_flights"
	flightType  = "one_way"
	currency    = "USD"
	travelClass = "economy"
)

// DefaultBaseURL is the public search endpoint.
const DefaultBaseURL = "https://www.searchapi.io/api/v1/search"

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 64 << 10

// Config holds the client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// RatePerSecond limits outgoing requests; 0 disables the limiter.
	RatePerSecond float64

	// Retry controls repeated attempts on retryable failures.
	Retry retry.Config
}

// Client implements domain.FareSearcher over HTTP.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewClient creates a Client. Missing values fall back to defaults; an empty API key
// is allowed so the server can start and answer with a configuration error.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = retry.UpstreamConfig
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.With().Str("component", ServiceName).Logger(),
	}
	if cfg.RatePerSecond > 0 {
		burst := int(cfg.RatePerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	c.cfg.Retry = c.cfg.Retry.WithOnRetry(func(attempt int, err error) {
		c.log.Warn().Err(err).Int("attempt", attempt).Msg("retrying upstream call")
	})
	return c
}

// SearchFlights runs a one-way economy search in USD.
func (c *Client) SearchFlights(ctx context.Context, params domain.LiveSearchParams) (*domain.LiveSearchResult, error) {
	adults := params.Adults
	if adults <= 0 {
		adults = 1
	}
	q := c.baseQuery(params.DepartureID, params.ArrivalID, params.OutboundDate)
	q.Set("adults", strconv.Itoa(adults))

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	result, err := domain.ParseLiveSearchBody(body)
	if err != nil {
		return nil, domain.NewUpstreamDecodeError(ServiceName, err)
	}
	return result, nil
}

// GetBookingOptions fetches firm offers for a booking token.
func (c *Client) GetBookingOptions(ctx context.Context, req domain.BookingOptionsRequest) ([]domain.BookingOption, error) {
	q := c.baseQuery(req.DepartureID, req.ArrivalID, req.OutboundDate)
	q.Set("booking_token", req.BookingToken)

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	options, err := domain.ParseBookingOptionsBody(body)
	if err != nil {
		return nil, domain.NewUpstreamDecodeError(ServiceName, err)
	}
	return options, nil
}

func (c *Client) baseQuery(departureID, arrivalID, outboundDate string) url.Values {
	q := url.Values{}
	q.Set("engine", engine)
	q.Set("departure_id", departureID)
	q.Set("arrival_id", arrivalID)
	q.Set("outbound_date", outboundDate)
	q.Set("flight_type", flightType)
	q.Set("currency", currency)
	q.Set("travel_class", travelClass)
	return q
}

// get performs the rate-limited, retried GET and returns a 2xx body.
func (c *Client) get(ctx context.Context, q url.Values) ([]byte, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.NewConfigurationError("SEARCHAPI_API_KEY")
	}
	q.Set("api_key", c.cfg.APIKey)
	endpoint := c.cfg.BaseURL + "?" + q.Encode()

	return retry.DoWithResult(ctx, func() ([]byte, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		return c.do(ctx, endpoint)
	}, c.cfg.Retry)
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", ServiceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Error().
			Int("status", resp.StatusCode).
			Dur("latency", time.Since(start)).
			Msg("upstream returned error status")
		return nil, domain.NewUpstreamStatusError(ServiceName, resp.StatusCode, string(text))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamDecodeError(ServiceName, err)
	}

	c.log.Debug().Int("status", resp.StatusCode).Dur("latency", time.Since(start)).Msg("upstream call done")
	return body, nil
}

var _ domain.FareSearcher = (*Client)(nil)
