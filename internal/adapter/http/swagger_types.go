// Package http provides swagger type definitions for API documentation.
// These types describe payloads the handlers pass through untouched, so swag can document them.
package http

// SwaggerProxySearchRequest is the body of the live search proxy.
// @Description One-way economy search parameters
type SwaggerProxySearchRequest struct {
	// DepartureID is the origin airport code, 3 uppercase letters
	DepartureID string `json:"departure_id" example:"DAM"`

	// ArrivalID is the destination airport code, 3 uppercase letters
	ArrivalID string `json:"arrival_id" example:"IST"`

	// OutboundDate is the travel date
	OutboundDate string `json:"outbound_date" example:"2026-11-20"`

	// Adults is the passenger count (default 1)
	Adults int `json:"adults,omitempty" example:"1"`
}

// SwaggerProxyBookingRequest is the body of the booking options proxy.
// @Description Booking options lookup for a previously returned fare
type SwaggerProxyBookingRequest struct {
	// BookingToken is the token of a live search offer
	BookingToken string `json:"booking_token" example:"WyJDalJJ..."`

	DepartureID  string `json:"departure_id" example:"DAM"`
	ArrivalID    string `json:"arrival_id" example:"IST"`
	OutboundDate string `json:"outbound_date" example:"2026-11-20"`
}

// SwaggerBookingOptionsResponse is the booking options proxy answer.
// @Description Booking options as returned by the flight search API
type SwaggerBookingOptionsResponse struct {
	BookingOptions []SwaggerBookingOption `json:"booking_options"`
}

// SwaggerBookingOption is one firm booking offer.
// @Description A bookable offer
type SwaggerBookingOption struct {
	// Price is the offer price in USD
	Price float64 `json:"price" example:"245"`

	// BookingRequest is where the traveller is sent
	BookingRequest SwaggerBookingRequest `json:"booking_request"`
}

// SwaggerBookingRequest is the link of a booking option.
// @Description Booking link; post_data is appended as a query string when present
type SwaggerBookingRequest struct {
	URL      string `json:"url" example:"https://www.google.com/travel/clk/f"`
	PostData string `json:"post_data,omitempty" example:"u=EgZ..."`
}
