package http

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/flight-deals/syria-flight-deals/internal/adapter/http/response"
)

// maxDealsLimit caps the limit query parameter of the deals endpoint.
const maxDealsLimit = 50

// Deals handles GET /api/v1/deals/:airport
//
// @Summary Cheapest deals from or to an airport
// @Description Cheapest fare per route touching the airport, cheapest first
// @Tags deals
// @Produce json
// @Param airport path string true "Airport code" example(DAM)
// @Param limit query int false "Maximum number of routes (default 6)"
// @Success 200 {object} FaresResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/deals/{airport} [get]
func (h *Handler) Deals(c echo.Context) error {
	airport, err := pathAirport(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	limit := h.cfg.DealsLimit
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil || limit < 1 || limit > maxDealsLimit {
		return response.ValidationError(c, map[string]string{
			"limit": fmt.Sprintf("limit must be between 1 and %d", maxDealsLimit),
		})
	}

	records, err := h.deals.Deals(c.Request().Context(), airport, limit)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFaresResponseDTO(records))
}

// SearchFlights handles GET /api/v1/flights
//
// @Summary Search the flight dataset
// @Description Flights leaving (type=from) or reaching (type=to) the hub airport, filtered and sorted
// @Tags flights
// @Produce json
// @Param type query string false "Trip type: from or to (default from)"
// @Param airport query string false "Hub airport (default DAM)"
// @Param destination query string false "Airport at the other end"
// @Param airlines query string false "Comma-separated airline codes"
// @Param maxPrice query number false "Maximum price in USD"
// @Param directOnly query bool false "Direct flights only"
// @Param sortBy query string false "price, duration or departure"
// @Success 200 {object} FaresResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/flights [get]
func (h *Handler) SearchFlights(c echo.Context) error {
	q, err := bindDatasetSearchQuery(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	records, err := h.deals.Search(c.Request().Context(), ToDealsQuery(q, h.cfg.Hub))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFaresResponseDTO(records))
}

// Calendar handles GET /api/v1/explore/:airport/calendar
//
// @Summary Monthly price calendar
// @Description Cheapest price per day of the month with price tiers
// @Tags explore
// @Produce json
// @Param airport path string true "Airport code" example(DAM)
// @Param year query int false "Year (default current)"
// @Param month query int false "Month 1-12 (default current)"
// @Param destination query string false "Restrict to one counterpart airport"
// @Success 200 {object} CalendarResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/explore/{airport}/calendar [get]
func (h *Handler) Calendar(c echo.Context) error {
	airport, err := pathAirport(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}
	q, err := bindMonthQuery(c, h.clock, false)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	cal, err := h.deals.Calendar(c.Request().Context(), airport, q.Year, q.Month, q.Destination)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, CalendarResponseDTO{
		Airport:     airport,
		Destination: q.Destination,
		Calendar:    cal,
	})
}

// DayFlights handles GET /api/v1/explore/:airport/day
//
// @Summary Flights of one calendar day
// @Tags explore
// @Produce json
// @Param airport path string true "Airport code" example(DAM)
// @Param year query int false "Year (default current)"
// @Param month query int false "Month 1-12 (default current)"
// @Param day query int true "Day of month"
// @Param destination query string false "Restrict to one counterpart airport"
// @Success 200 {object} DayFlightsResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/explore/{airport}/day [get]
func (h *Handler) DayFlights(c echo.Context) error {
	airport, err := pathAirport(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}
	q, err := bindMonthQuery(c, h.clock, true)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	records, err := h.deals.DayFlights(c.Request().Context(), airport, q.Year, q.Month, q.Day, q.Destination)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, DayFlightsResponseDTO{
		Airport: airport,
		Date:    fmt.Sprintf("%04d-%02d-%02d", q.Year, q.Month, q.Day),
		Total:   len(records),
		Flights: toFareDTOs(records),
	})
}

// ExploreSummary handles GET /api/v1/explore/summary
//
// @Summary Airport teasers
// @Description Cheapest price and destination count per airport
// @Tags explore
// @Produce json
// @Param airports query string false "Comma-separated airport codes (default DAM,ALP)"
// @Success 200 {object} SummaryResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/explore/summary [get]
func (h *Handler) ExploreSummary(c echo.Context) error {
	airports, err := queryAirports(c, "airports")
	if err != nil {
		return h.handleValidationError(c, err)
	}
	if len(airports) == 0 {
		airports = h.cfg.ExploreAirports
	}

	summaries, err := h.deals.AirportSummaries(c.Request().Context(), airports)
	if err != nil {
		return h.handleError(c, err)
	}

	out := SummaryResponseDTO{Airports: make([]AirportSummaryDTO, len(summaries))}
	for i, s := range summaries {
		out.Airports[i] = ToAirportSummaryDTO(s)
	}
	return response.OK(c, out)
}

// Destinations handles GET /api/v1/explore/:airport/destinations
//
// @Summary Airports served from or to an airport
// @Tags explore
// @Produce json
// @Param airport path string true "Airport code" example(DAM)
// @Success 200 {object} DestinationsResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/explore/{airport}/destinations [get]
func (h *Handler) Destinations(c echo.Context) error {
	airport, err := pathAirport(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	destinations, err := h.deals.Destinations(c.Request().Context(), airport)
	if err != nil {
		return h.handleError(c, err)
	}
	if destinations == nil {
		destinations = []string{}
	}
	return response.OK(c, DestinationsResponseDTO{Airport: airport, Destinations: destinations})
}

// RoutePrice handles GET /api/v1/routes/:airport/price
//
// @Summary Cheapest price between an airport and a set of counterparts
// @Tags routes
// @Produce json
// @Param airport path string true "Airport code" example(DAM)
// @Param to query string true "Comma-separated counterpart airport codes" example(IST,DXB)
// @Success 200 {object} RoutePriceResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/routes/{airport}/price [get]
func (h *Handler) RoutePrice(c echo.Context) error {
	airport, err := pathAirport(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}
	to, err := queryAirports(c, "to")
	if err != nil {
		return h.handleValidationError(c, err)
	}
	if len(to) == 0 {
		return response.ValidationError(c, map[string]string{"to": "to is required"})
	}

	price, err := h.deals.RoutePrice(c.Request().Context(), airport, to)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, RoutePriceResponseDTO{Airport: airport, To: to, Price: price})
}

// Airlines handles GET /api/v1/airlines
//
// @Summary Active airlines
// @Tags reference
// @Produce json
// @Success 200 {object} AirlinesResponseDTO
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/airlines [get]
func (h *Handler) Airlines(c echo.Context) error {
	airlines, err := h.deals.Airlines(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, AirlinesResponseDTO{Airlines: airlines})
}

// Airports handles GET /api/v1/airports
//
// @Summary Active destinations
// @Tags reference
// @Produce json
// @Success 200 {object} AirportsResponseDTO
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/airports [get]
func (h *Handler) Airports(c echo.Context) error {
	airports, err := h.deals.Airports(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, AirportsResponseDTO{Airports: airports})
}

// Locate handles GET /api/v1/locate
//
// @Summary Default departure airport for the visitor
// @Tags explore
// @Produce json
// @Param from query string false "Explicit airport choice"
// @Success 200 {object} LocateResponseDTO
// @Router /api/v1/locate [get]
func (h *Handler) Locate(c echo.Context) error {
	airport := h.cfg.Hub
	if h.locator != nil {
		airport = h.locator.DetectUserAirport(c.Request())
	}
	return response.OK(c, LocateResponseDTO{Airport: airport, Label: airportLabels[airport].City})
}
