// Package integration provides helpers and integration tests for the flight deals service.
// Integration tests run the full HTTP stack (middleware, handlers, use cases, cache)
// against the bundled sample dataset and a fake live searcher.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-deals/syria-flight-deals/internal/adapter/dataset/file"
	"github.com/flight-deals/syria-flight-deals/internal/adapter/geo"
	httpAdapter "github.com/flight-deals/syria-flight-deals/internal/adapter/http"
	"github.com/flight-deals/syria-flight-deals/internal/adapter/http/middleware"
	"github.com/flight-deals/syria-flight-deals/internal/adapter/http/response"
	"github.com/flight-deals/syria-flight-deals/internal/domain"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/cache"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/logger"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/timeutil"
	"github.com/flight-deals/syria-flight-deals/internal/usecase"
	"github.com/flight-deals/syria-flight-deals/test/testutil"
)

// FixedNow is the server time of every integration test: Sunday 15 March 2026.
var FixedNow = testutil.DamascusNoon(2026, time.March, 15)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Clock *timeutil.MockClock
	Cache *cache.Memory
	Live  usecase.LiveSearchUseCase
}

// Options tunes NewTestServer.
type Options struct {
	// LiveSearchDisabled simulates a missing search API key
	LiveSearchDisabled bool

	// CacheTTL defaults to one minute
	CacheTTL time.Duration
}

// NewTestServer creates a test server over the sample dataset and searcher.
func NewTestServer(t *testing.T, searcher domain.FareSearcher, opts Options) *TestServer {
	t.Helper()

	if opts.CacheTTL == 0 {
		opts.CacheTTL = time.Minute
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	log := logger.Nop().Logger
	middleware.Setup(e, log)

	clock := timeutil.NewMockClock(FixedNow)
	store := cache.NewMemory(clock)

	deals := usecase.NewDealsUseCase(file.NewStore(testutil.DatasetPath(t)), store, usecase.DealsConfig{
		Hub:      "DAM",
		CacheTTL: opts.CacheTTL,
	}, log)
	live := usecase.NewLiveSearchUseCase(searcher, store, opts.CacheTTL, log)

	handler := httpAdapter.NewHandler(deals, live, geo.NewHeaderLocator("DAM", []string{"DAM", "ALP"}), clock, httpAdapter.Config{
		Hub:               "DAM",
		LiveSearchEnabled: !opts.LiveSearchDisabled,
	})
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:  e,
		Clock: clock,
		Cache: store,
		Live:  live,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	RawBody string
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch {
	case req.RawBody != "":
		bodyReader = bytes.NewReader([]byte(req.RawBody))
	case req.Body != nil:
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	default:
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil || req.RawBody != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get makes a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Post makes a POST request with a JSON body.
func (ts *TestServer) Post(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// Decode parses the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ParseFares parses the response body as a fare list.
func (r *Response) ParseFares() (*httpAdapter.FaresResponseDTO, error) {
	var resp httpAdapter.FaresResponseDTO
	if err := r.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses a versioned API error body.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var resp response.ErrorDetail
	if err := r.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseProxyError parses a proxy error body.
func (r *Response) ParseProxyError() (string, error) {
	var resp response.ProxyError
	if err := r.Decode(&resp); err != nil {
		return "", err
	}
	return resp.Error, nil
}

// LiveSearchBody is a helper struct for building live search request bodies.
type LiveSearchBody struct {
	DepartureID  string                 `json:"departure_id"`
	ArrivalID    string                 `json:"arrival_id"`
	OutboundDate string                 `json:"outbound_date"`
	Adults       int                    `json:"adults,omitempty"`
	Filters      map[string]interface{} `json:"filters,omitempty"`
	SortBy       string                 `json:"sortBy,omitempty"`
}

// DefaultLiveSearch returns a valid DAM to IST search body.
func DefaultLiveSearch() LiveSearchBody {
	return LiveSearchBody{
		DepartureID:  "DAM",
		ArrivalID:    "IST",
		OutboundDate: "2026-04-01",
	}
}

// BookingBody is a helper struct for booking options and resolve requests.
type BookingBody struct {
	BookingToken string `json:"booking_token"`
	DepartureID  string `json:"departure_id"`
	ArrivalID    string `json:"arrival_id"`
	OutboundDate string `json:"outbound_date"`
}

// DefaultBooking returns a valid booking body for the default search.
func DefaultBooking() BookingBody {
	return BookingBody{
		BookingToken: "token-DAM-IST-1",
		DepartureID:  "DAM",
		ArrivalID:    "IST",
		OutboundDate: "2026-04-01",
	}
}
