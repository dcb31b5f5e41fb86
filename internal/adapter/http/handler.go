// Package http provides the HTTP handler layer for the flight deals API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-deals/syria-flight-deals/internal/adapter/http/response"
	"github.com/flight-deals/syria-flight-deals/internal/domain"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/timeutil"
	"github.com/flight-deals/syria-flight-deals/internal/usecase"
)

// DefaultExploreAirports are the airports shown on the explore entry page.
var DefaultExploreAirports = []string{"DAM", "ALP"}

// Config tunes the handlers.
type Config struct {
	// Hub is the airport dataset searches are relative to
	Hub string

	// LiveSearchEnabled is false when no search API key is configured
	LiveSearchEnabled bool

	// ExploreAirports are summarized when /explore/summary gets no airports parameter
	ExploreAirports []string

	// DealsLimit caps the deal cards when the request gives no limit
	DealsLimit int
}

// Handler handles the HTTP endpoints of the flight deals API.
type Handler struct {
	deals   usecase.DealsUseCase
	live    usecase.LiveSearchUseCase
	locator domain.AirportLocator
	clock   timeutil.Clock
	cfg     Config
}

// NewHandler creates a Handler. A nil clock uses the real clock.
func NewHandler(deals usecase.DealsUseCase, live usecase.LiveSearchUseCase, locator domain.AirportLocator, clock timeutil.Clock, cfg Config) *Handler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if cfg.Hub == "" {
		cfg.Hub = usecase.DefaultHubAirport
	}
	cfg.Hub = strings.ToUpper(cfg.Hub)
	if len(cfg.ExploreAirports) == 0 {
		cfg.ExploreAirports = DefaultExploreAirports
	}
	if cfg.DealsLimit <= 0 {
		cfg.DealsLimit = usecase.DefaultDealsLimit
	}
	return &Handler{
		deals:   deals,
		live:    live,
		locator: locator,
		clock:   clock,
		cfg:     cfg,
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to versioned API responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return response.ValidationError(c, map[string]string{validationErr.Field: validationErr.Message})
	}

	if domain.IsInvalidArgument(err) || domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if domain.IsConfiguration(err) {
		return response.Misconfigured(c)
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return response.BadGateway(c, upstreamErr.Body)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}
