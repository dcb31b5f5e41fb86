package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-deals/syria-flight-deals/internal/adapter/http/response"
	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// Proxy error messages.
const (
	MsgInvalidJSONBody = "Invalid JSON body"

	searchAPIErrorPrefix  = "Search API error: "
	searchFailedPrefix    = "Search failed: "
	bookingAPIErrorPrefix = "Booking options API error: "
	bookingFailedPrefix   = "Booking options fetch failed: "
)

// SearchProxy handles POST /api/flights
//
// @Summary Live flight search proxy
// @Description Forwards a one-way economy search to the flight search API and returns its body untouched
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body SwaggerProxySearchRequest true "Route and date"
// @Success 200 {object} object "Upstream search response"
// @Failure 400 {object} response.ProxyError "Invalid JSON body or parameters"
// @Failure 500 {object} response.ProxyError "Missing API key or unexpected failure"
// @Failure 502 {object} response.ProxyError "Search API error"
// @Router /api/flights [post]
func (h *Handler) SearchProxy(c echo.Context) error {
	if !h.cfg.LiveSearchEnabled {
		return response.Proxy(c, http.StatusInternalServerError, response.MsgMisconfigured)
	}

	var params domain.LiveSearchParams
	if err := decodeJSONBody(c, &params); err != nil {
		return response.Proxy(c, http.StatusBadRequest, MsgInvalidJSONBody)
	}

	body, err := h.live.SearchRaw(c.Request().Context(), params)
	if err != nil {
		return proxyError(c, err, searchAPIErrorPrefix, searchFailedPrefix)
	}
	return response.RawJSON(c, body)
}

// BookingOptionsProxy handles POST /api/booking-options
//
// @Summary Booking options proxy
// @Description Fetches firm booking offers for a booking token returned by a live search
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body SwaggerProxyBookingRequest true "Booking token, route and date"
// @Success 200 {object} SwaggerBookingOptionsResponse
// @Failure 400 {object} response.ProxyError "Invalid JSON body or parameters"
// @Failure 500 {object} response.ProxyError "Missing API key or unexpected failure"
// @Failure 502 {object} response.ProxyError "Booking options API error"
// @Router /api/booking-options [post]
func (h *Handler) BookingOptionsProxy(c echo.Context) error {
	if !h.cfg.LiveSearchEnabled {
		return response.Proxy(c, http.StatusInternalServerError, response.MsgMisconfigured)
	}

	var req domain.BookingOptionsRequest
	if err := decodeJSONBody(c, &req); err != nil {
		return response.Proxy(c, http.StatusBadRequest, MsgInvalidJSONBody)
	}

	options, err := h.live.BookingOptions(c.Request().Context(), req)
	if err != nil {
		return proxyError(c, err, bookingAPIErrorPrefix, bookingFailedPrefix)
	}
	if options == nil {
		options = []domain.BookingOption{}
	}
	return response.OK(c, BookingOptionsResponseDTO{BookingOptions: options})
}

// Preflight answers OPTIONS on the proxy routes. ProxyCORS normally answers first.
func (h *Handler) Preflight(c echo.Context) error {
	return response.NoContent(c)
}

// proxyError maps an error to the proxy's {"error": ...} body.
// Upstream non-2xx answers become 502 with the upstream body embedded.
func proxyError(c echo.Context, err error, apiPrefix, failedPrefix string) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return response.Proxy(c, http.StatusBadRequest, validationErr.Message)
	}

	if domain.IsConfiguration(err) {
		return response.Proxy(c, http.StatusInternalServerError, response.MsgMisconfigured)
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.StatusCode != 0 {
		return response.Proxy(c, http.StatusBadGateway, apiPrefix+upstreamErr.Body)
	}

	return response.Proxy(c, http.StatusInternalServerError, failedPrefix+err.Error())
}

// decodeJSONBody decodes the request body whatever its content type.
// An empty body is an error.
func decodeJSONBody(c echo.Context, v interface{}) error {
	return json.NewDecoder(c.Request().Body).Decode(v)
}
