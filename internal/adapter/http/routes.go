package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-deals/syria-flight-deals/internal/adapter/http/middleware"
)

// RegisterRoutes registers all routes of the flight deals API.
//
// The search proxy lives under /api with its own CORS policy; the browse and
// explore endpoints live under /api/v1.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)

	proxy := e.Group("/api", middleware.ProxyCORS())
	proxy.POST("/flights", h.SearchProxy)
	proxy.OPTIONS("/flights", h.Preflight)
	proxy.POST("/booking-options", h.BookingOptionsProxy)
	proxy.OPTIONS("/booking-options", h.Preflight)

	v1 := e.Group("/api/v1")

	v1.GET("/deals/:airport", h.Deals)
	v1.GET("/flights", h.SearchFlights)

	explore := v1.Group("/explore")
	explore.GET("/summary", h.ExploreSummary)
	explore.GET("/:airport/calendar", h.Calendar)
	explore.GET("/:airport/day", h.DayFlights)
	explore.GET("/:airport/destinations", h.Destinations)

	v1.GET("/routes/:airport/price", h.RoutePrice)
	v1.GET("/airlines", h.Airlines)
	v1.GET("/airports", h.Airports)
	v1.GET("/locate", h.Locate)

	v1.POST("/live/search", h.LiveSearch)
	v1.POST("/booking/resolve", h.ResolveBooking)
}
