package domain

import (
	"bytes"
	"encoding/json"
)

// RawRecord is the tagged union handed to the normalizer.
// Exactly one of Dataset or Live is set, matching Source.
type RawRecord struct {
	Source  Source
	Dataset *DatasetRow
	Live    *LiveOffer
}

// FromDataset wraps dataset rows into raw records.
func FromDataset(rows []DatasetRow) []RawRecord {
	out := make([]RawRecord, 0, len(rows))
	for i := range rows {
		row := rows[i]
		out = append(out, RawRecord{Source: SourceDataset, Dataset: &row})
	}
	return out
}

// FromLive wraps live offers into raw records.
func FromLive(offers []LiveOffer) []RawRecord {
	out := make([]RawRecord, 0, len(offers))
	for i := range offers {
		offer := offers[i]
		out = append(out, RawRecord{Source: SourceLive, Live: &offer})
	}
	return out
}

// Airline is a carrier as stored in the dataset.
type Airline struct {
	ID            string  `json:"id" bson:"_id"`
	Name          string  `json:"name" bson:"name"`
	NameAr        string  `json:"name_ar" bson:"name_ar"`
	Code          string  `json:"code" bson:"code"`
	LogoURL       *string `json:"logo_url" bson:"logo_url"`
	WebsiteURL    *string `json:"website_url" bson:"website_url"`
	Country       *string `json:"country" bson:"country"`
	Description   *string `json:"description" bson:"description"`
	DescriptionAr *string `json:"description_ar" bson:"description_ar"`
	IsActive      bool    `json:"is_active" bson:"is_active"`
}

// Airport is a destination as stored in the dataset.
type Airport struct {
	ID            string  `json:"id" bson:"_id"`
	City          string  `json:"city" bson:"city"`
	CityAr        string  `json:"city_ar" bson:"city_ar"`
	Country       string  `json:"country" bson:"country"`
	CountryAr     string  `json:"country_ar" bson:"country_ar"`
	AirportCode   string  `json:"airport_code" bson:"airport_code"`
	AirportName   *string `json:"airport_name" bson:"airport_name"`
	AirportNameAr *string `json:"airport_name_ar" bson:"airport_name_ar"`
	IsActive      bool    `json:"is_active" bson:"is_active"`
}

// DatasetRow is a flight row joined with its airline, origin and destination.
type DatasetRow struct {
	ID              string   `json:"id" bson:"_id"`
	AirlineID       string   `json:"airline_id" bson:"airline_id"`
	OriginID        string   `json:"origin_id" bson:"origin_id"`
	DestinationID   string   `json:"destination_id" bson:"destination_id"`
	FlightNumber    string   `json:"flight_number" bson:"flight_number"`
	DepartureTime   string   `json:"departure_time" bson:"departure_time"`
	ArrivalTime     string   `json:"arrival_time" bson:"arrival_time"`
	DurationMinutes int      `json:"duration_minutes" bson:"duration_minutes"`
	PriceUSD        *float64 `json:"price_usd" bson:"price_usd"`
	DaysOfWeek      []int    `json:"days_of_week" bson:"days_of_week"`
	Stops           int      `json:"stops" bson:"stops"`
	IsActive        bool     `json:"is_active" bson:"is_active"`

	Airline     *Airline `json:"airline,omitempty" bson:"-"`
	Origin      *Airport `json:"origin,omitempty" bson:"-"`
	Destination *Airport `json:"destination,omitempty" bson:"-"`
}

// LiveAirportTime is a departure or arrival point of a live search segment.
type LiveAirportTime struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// LiveSegment is one leg of a live search offer.
type LiveSegment struct {
	DepartureAirport LiveAirportTime `json:"departure_airport"`
	ArrivalAirport   LiveAirportTime `json:"arrival_airport"`
	Duration         int             `json:"duration"`
	Airline          string          `json:"airline"`
	AirlineLogo      string          `json:"airline_logo"`
	FlightNumber     string          `json:"flight_number"`
	Airplane         string          `json:"airplane"`
}

// LiveLayover is a connection between two live segments.
type LiveLayover struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// LiveOffer is one itinerary returned by the live search API.
type LiveOffer struct {
	Flights       []LiveSegment `json:"flights"`
	Layovers      []LiveLayover `json:"layovers"`
	TotalDuration int           `json:"total_duration"`
	Price         *float64      `json:"price"`
	Type          string        `json:"type"`
	BookingToken  string        `json:"booking_token"`
}

// LiveSearchResult holds the upstream body verbatim next to the decoded offers.
type LiveSearchResult struct {
	// Raw is the upstream JSON body, forwarded untouched by the proxy endpoint
	Raw json.RawMessage

	// Offers are the best and other flights, in upstream order
	Offers []LiveOffer
}

// BookingRequest is where a booking option sends the traveller.
type BookingRequest struct {
	URL      string `json:"url"`
	PostData string `json:"post_data"`
}

// BookingOption is one firm offer for a previously returned fare.
// It keeps the upstream JSON so the proxy can forward it unchanged.
type BookingOption struct {
	Price          float64
	BookingRequest BookingRequest
	raw            json.RawMessage
}

type bookingOptionWire struct {
	Price          float64        `json:"price"`
	BookingRequest BookingRequest `json:"booking_request"`
	Together       *struct {
		Price          float64        `json:"price"`
		BookingRequest BookingRequest `json:"booking_request"`
	} `json:"together,omitempty"`
}

// UnmarshalJSON decodes the fields the service needs and remembers the raw payload.
// Upstream sometimes nests the offer under "together"; both layouts are accepted.
func (b *BookingOption) UnmarshalJSON(data []byte) error {
	var w bookingOptionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	b.Price = w.Price
	b.BookingRequest = w.BookingRequest
	if w.Together != nil && b.BookingRequest.URL == "" {
		b.Price = w.Together.Price
		b.BookingRequest = w.Together.BookingRequest
	}
	b.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the upstream payload when one was decoded.
func (b BookingOption) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(b.raw)) > 0 {
		return b.raw, nil
	}
	return json.Marshal(bookingOptionWire{Price: b.Price, BookingRequest: b.BookingRequest})
}

// URL builds the link that opens the booking option.
func (b BookingOption) URL() string {
	if b.BookingRequest.PostData != "" {
		return b.BookingRequest.URL + "?" + b.BookingRequest.PostData
	}
	return b.BookingRequest.URL
}

// liveSearchBody is the subset of the search API response the service reads.
type liveSearchBody struct {
	BestFlights  []LiveOffer `json:"best_flights"`
	OtherFlights []LiveOffer `json:"other_flights"`
}

// ParseLiveSearchBody decodes an upstream search body. Best flights come first.
// The body is kept verbatim in Raw.
func ParseLiveSearchBody(body []byte) (*LiveSearchResult, error) {
	var parsed liveSearchBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	offers := make([]LiveOffer, 0, len(parsed.BestFlights)+len(parsed.OtherFlights))
	offers = append(offers, parsed.BestFlights...)
	offers = append(offers, parsed.OtherFlights...)
	return &LiveSearchResult{
		Raw:    append(json.RawMessage(nil), body...),
		Offers: offers,
	}, nil
}

// bookingOptionsBody is the subset of the booking options response the service reads.
type bookingOptionsBody struct {
	BookingOptions []BookingOption `json:"booking_options"`
}

// ParseBookingOptionsBody decodes an upstream booking options body.
// A missing or null list yields an empty, non-nil slice.
func ParseBookingOptionsBody(body []byte) ([]BookingOption, error) {
	var parsed bookingOptionsBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	if parsed.BookingOptions == nil {
		return []BookingOption{}, nil
	}
	return parsed.BookingOptions, nil
}
