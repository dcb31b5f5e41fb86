package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flight-deals/syria-flight-deals/internal/adapter/http"
	"github.com/flight-deals/syria-flight-deals/internal/domain"
	"github.com/flight-deals/syria-flight-deals/test/mock"
)

func newDatasetServer(t *testing.T) *TestServer {
	return NewTestServer(t, mock.NewSearcher(), Options{})
}

func prices(t *testing.T, fares []httpAdapter.FareDTO) []float64 {
	t.Helper()
	out := make([]float64, len(fares))
	for i, f := range fares {
		require.NotNil(t, f.Price.Amount, "fare %s has no price", f.ID)
		out[i] = *f.Price.Amount
	}
	return out
}

// TestHealth tests the health endpoint through the full middleware stack.
func TestHealth(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
	assert.NotEmpty(t, resp.Headers.Get("X-Request-ID"))
}

// TestDeals_CheapestPerRoute tests the deal cards for Damascus.
func TestDeals_CheapestPerRoute(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/deals/DAM")
	require.Equal(t, http.StatusOK, resp.Code)

	fares, err := resp.ParseFares()
	require.NoError(t, err)

	// The inactive RB 441 at 90 USD must not show up.
	assert.Equal(t, 6, fares.Total)
	assert.Equal(t, []float64{95, 120, 125, 145, 150, 165}, prices(t, fares.Flights))
	assert.Equal(t, "6Q 501", fares.Flights[0].FlightNumber)
	assert.Equal(t, "BEY", fares.Flights[0].Destination)
	assert.Equal(t, "45m", fares.Flights[0].Duration.Formatted)
}

// TestDeals_Limit tests the limit parameter and its bounds.
func TestDeals_Limit(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/deals/dam?limit=2")
	require.Equal(t, http.StatusOK, resp.Code)
	fares, err := resp.ParseFares()
	require.NoError(t, err)
	assert.Equal(t, []float64{95, 120}, prices(t, fares.Flights))

	resp = ts.Get("/api/v1/deals/DAM?limit=0")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = ts.Get("/api/v1/deals/DAMA")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// TestSearchFlights tests hub-relative dataset search.
func TestSearchFlights(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPrices []float64
	}{
		{
			name:       "from hub to one destination",
			query:      "type=from&destination=DXB",
			wantPrices: []float64{189, 220},
		},
		{
			name:       "to hub",
			query:      "type=to",
			wantPrices: []float64{125, 150, 199, 235},
		},
		{
			name:       "max price",
			query:      "type=from&maxPrice=150",
			wantPrices: []float64{95, 120, 145},
		},
		{
			name:       "airline filter",
			query:      "type=from&airlines=rj,G9",
			wantPrices: []float64{120, 145},
		},
		{
			name:       "aleppo hub direct only",
			query:      "type=from&airport=ALP&directOnly=true&maxPrice=300",
			wantPrices: []float64{110, 295},
		},
	}

	ts := newDatasetServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Get("/api/v1/flights?" + tt.query)
			require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

			fares, err := resp.ParseFares()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrices, prices(t, fares.Flights))
		})
	}
}

// TestSearchFlights_UnknownPricesLast tests that "call for price" fares sort last.
func TestSearchFlights_UnknownPricesLast(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/flights?type=from&airport=ALP")
	require.Equal(t, http.StatusOK, resp.Code)

	fares, err := resp.ParseFares()
	require.NoError(t, err)
	require.Len(t, fares.Flights, 5)

	assert.NotNil(t, fares.Flights[0].Price.Amount)
	assert.NotNil(t, fares.Flights[2].Price.Amount)
	assert.Nil(t, fares.Flights[3].Price.Amount)
	assert.Nil(t, fares.Flights[4].Price.Amount)
}

// TestSearchFlights_InvalidQuery tests query validation.
func TestSearchFlights_InvalidQuery(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/flights?type=sideways&maxPrice=abc")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "validation_error", errResp.Code)
}

// TestCalendar tests the month view of the explore page.
func TestCalendar(t *testing.T) {
	ts := newDatasetServer(t)

	// No year/month: the server's current month (March 2026) is used.
	resp := ts.Get("/api/v1/explore/DAM/calendar")
	require.Equal(t, http.StatusOK, resp.Code)

	var cal httpAdapter.CalendarResponseDTO
	require.NoError(t, resp.Decode(&cal))

	assert.Equal(t, 2026, cal.Calendar.Year)
	assert.Equal(t, 3, cal.Calendar.Month)
	require.Len(t, cal.Calendar.Days, 31)
	require.NotNil(t, cal.Calendar.MinPrice)
	require.NotNil(t, cal.Calendar.MaxPrice)
	assert.Equal(t, 95.0, *cal.Calendar.MinPrice)
	assert.Equal(t, 189.0, *cal.Calendar.MaxPrice)

	// 1 March 2026 is a Sunday.
	sunday := cal.Calendar.Days[0]
	assert.Equal(t, 7, sunday.Weekday)
	require.NotNil(t, sunday.Price)
	assert.Equal(t, 189.0, *sunday.Price)
	assert.Equal(t, domain.TierExpensive, sunday.Tier)

	tuesday := cal.Calendar.Days[2]
	require.NotNil(t, tuesday.Price)
	assert.Equal(t, 95.0, *tuesday.Price)
	assert.Equal(t, domain.TierCheap, tuesday.Tier)
}

// TestCalendar_Destination tests a calendar restricted to one counterpart.
func TestCalendar_Destination(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/explore/DAM/calendar?year=2026&month=3&destination=DXB")
	require.Equal(t, http.StatusOK, resp.Code)

	var cal httpAdapter.CalendarResponseDTO
	require.NoError(t, resp.Decode(&cal))
	assert.Equal(t, "DXB", cal.Destination)

	// Saturday 7 March has no DAM-DXB service.
	saturday := cal.Calendar.Days[6]
	assert.Nil(t, saturday.Price)
	assert.Empty(t, saturday.Tier)

	monday := cal.Calendar.Days[1]
	require.NotNil(t, monday.Price)
	assert.Equal(t, 220.0, *monday.Price)
}

// TestCalendar_InvalidMonth tests the month bounds.
func TestCalendar_InvalidMonth(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/explore/DAM/calendar?year=2026&month=13")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// TestDayFlights tests the flights of one calendar day.
func TestDayFlights(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/explore/DAM/day?year=2026&month=3&day=7")
	require.Equal(t, http.StatusOK, resp.Code)

	var day httpAdapter.DayFlightsResponseDTO
	require.NoError(t, resp.Decode(&day))

	assert.Equal(t, "2026-03-07", day.Date)
	assert.Equal(t, 4, day.Total)
	assert.Equal(t, []float64{95, 145, 150, 165}, prices(t, day.Flights))

	resp = ts.Get("/api/v1/explore/DAM/day?year=2026&month=2&day=30")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// TestExploreSummary tests the airport teasers.
func TestExploreSummary(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/explore/summary")
	require.Equal(t, http.StatusOK, resp.Code)

	var summary httpAdapter.SummaryResponseDTO
	require.NoError(t, resp.Decode(&summary))
	require.Len(t, summary.Airports, 2)

	dam := summary.Airports[0]
	assert.Equal(t, "DAM", dam.AirportCode)
	require.NotNil(t, dam.MinPrice)
	assert.Equal(t, 95.0, *dam.MinPrice)
	assert.Equal(t, 8, dam.DestinationCount)
	assert.Equal(t, "دمشق", dam.Label)

	alp := summary.Airports[1]
	assert.Equal(t, "ALP", alp.AirportCode)
	require.NotNil(t, alp.MinPrice)
	assert.Equal(t, 105.0, *alp.MinPrice)
	assert.Equal(t, 5, alp.DestinationCount)
}

// TestExploreSummary_UnknownAirport tests that an airport without flights has a null price.
func TestExploreSummary_UnknownAirport(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/explore/summary?airports=LTK")
	require.Equal(t, http.StatusOK, resp.Code)

	var summary httpAdapter.SummaryResponseDTO
	require.NoError(t, resp.Decode(&summary))
	require.Len(t, summary.Airports, 1)
	assert.Nil(t, summary.Airports[0].MinPrice)
	assert.Equal(t, 0, summary.Airports[0].DestinationCount)
}

// TestDestinations tests the counterpart list in first-seen order.
func TestDestinations(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/explore/DAM/destinations")
	require.Equal(t, http.StatusOK, resp.Code)

	var dest httpAdapter.DestinationsResponseDTO
	require.NoError(t, resp.Decode(&dest))
	assert.Equal(t, []string{"DXB", "SHJ", "AMM", "DOH", "SAW", "BEY", "RUH", "IST"}, dest.Destinations)
}

// TestRoutePrice tests the cheapest price over a set of counterparts.
func TestRoutePrice(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/routes/DAM/price?to=IST,SAW")
	require.Equal(t, http.StatusOK, resp.Code)
	var route httpAdapter.RoutePriceResponseDTO
	require.NoError(t, resp.Decode(&route))
	require.NotNil(t, route.Price)
	assert.Equal(t, 165.0, *route.Price)

	resp = ts.Get("/api/v1/routes/DAM/price?to=ALP")
	require.Equal(t, http.StatusOK, resp.Code)
	route = httpAdapter.RoutePriceResponseDTO{}
	require.NoError(t, resp.Decode(&route))
	assert.Nil(t, route.Price)

	resp = ts.Get("/api/v1/routes/DAM/price")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// TestReferenceLists tests the airline and airport lists.
func TestReferenceLists(t *testing.T) {
	ts := newDatasetServer(t)

	resp := ts.Get("/api/v1/airlines")
	require.Equal(t, http.StatusOK, resp.Code)
	var airlines httpAdapter.AirlinesResponseDTO
	require.NoError(t, resp.Decode(&airlines))
	assert.Len(t, airlines.Airlines, 7)

	resp = ts.Get("/api/v1/airports")
	require.Equal(t, http.StatusOK, resp.Code)
	var airports httpAdapter.AirportsResponseDTO
	require.NoError(t, resp.Decode(&airports))
	assert.Len(t, airports.Airports, 10)
}

// TestLocate tests the default departure airport.
func TestLocate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    string
	}{
		{"no hints", "/api/v1/locate", nil, "DAM"},
		{"explicit choice", "/api/v1/locate?from=alp", nil, "ALP"},
		{"explicit choice not served", "/api/v1/locate?from=IST", nil, "DAM"},
		{"city header", "/api/v1/locate", map[string]string{"CF-IPCity": "Aleppo"}, "ALP"},
		{"unknown city", "/api/v1/locate", map[string]string{"CF-IPCity": "Berlin"}, "DAM"},
	}

	ts := newDatasetServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Do(Request{Method: http.MethodGet, Path: tt.path, Headers: tt.headers})
			require.Equal(t, http.StatusOK, resp.Code)

			var loc httpAdapter.LocateResponseDTO
			require.NoError(t, resp.Decode(&loc))
			assert.Equal(t, tt.want, loc.Airport)
		})
	}
}
