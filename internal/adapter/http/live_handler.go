package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-deals/syria-flight-deals/internal/adapter/http/response"
	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// LiveSearch handles POST /api/v1/live/search
//
// @Summary Live fares, normalized
// @Description Runs a live one-way search and returns the offers as filtered, sorted fares
// @Tags live
// @Accept json
// @Produce json
// @Param request body LiveSearchRequest true "Search criteria"
// @Success 200 {object} FaresResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Missing API key or internal error"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 504 {object} response.ErrorDetail "Timeout"
// @Router /api/v1/live/search [post]
func (h *Handler) LiveSearch(c echo.Context) error {
	if !h.cfg.LiveSearchEnabled {
		return response.Misconfigured(c)
	}

	var req LiveSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	records, err := h.live.Search(
		c.Request().Context(),
		ToLiveSearchParams(&req),
		ToFilterCriteria(req.Filters),
		domain.ParseSortKey(req.SortBy),
	)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFaresResponseDTO(records))
}

// ResolveBooking handles POST /api/v1/booking/resolve
//
// @Summary Booking link for a live fare
// @Description Cheapest booking option link, or a generic search link when none is usable
// @Tags live
// @Accept json
// @Produce json
// @Param request body ResolveBookingRequest true "Booking token, route and date"
// @Success 200 {object} domain.BookingResolution
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/booking/resolve [post]
func (h *Handler) ResolveBooking(c echo.Context) error {
	var req ResolveBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	resolution, err := h.live.ResolveBooking(c.Request().Context(), ToBookingOptionsRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, resolution)
}
