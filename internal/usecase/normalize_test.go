package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

func datasetRow(id, origin, destination string, price *float64) domain.DatasetRow {
	return domain.DatasetRow{
		ID:              id,
		FlightNumber:    "RB 501",
		DepartureTime:   "09:15:00",
		ArrivalTime:     "11:45:00",
		DurationMinutes: 150,
		PriceUSD:        price,
		DaysOfWeek:      []int{2, 5},
		Stops:           0,
		IsActive:        true,
		Airline:         &domain.Airline{ID: "al-1", Name: "Syrian Air", Code: "rb"},
		Origin:          &domain.Airport{ID: "ap-1", City: "Damascus", AirportCode: origin},
		Destination:     &domain.Airport{ID: "ap-2", City: "Istanbul", AirportCode: destination},
	}
}

func TestNormalize_DatasetRow(t *testing.T) {
	rows := []domain.DatasetRow{datasetRow("f1", "dam", "IST", p(210.5))}

	got, rejected := Normalize(domain.FromDataset(rows))

	assert.Empty(t, rejected)
	require.Len(t, got, 1)
	r := got[0]
	assert.Equal(t, "f1", r.ID)
	assert.Equal(t, "DAM", r.OriginCode)
	assert.Equal(t, "IST", r.DestinationCode)
	assert.Equal(t, "RB", r.AirlineCode)
	assert.Equal(t, "Syrian Air", r.AirlineName)
	assert.Equal(t, "RB 501", r.FlightNumber)
	assert.Equal(t, "09:15:00", r.DepartureTime)
	assert.Equal(t, "11:45:00", r.ArrivalTime)
	assert.Equal(t, 150, r.DurationMinutes)
	assert.Equal(t, 0, r.Stops)
	assert.Equal(t, []int{2, 5}, r.DaysOfWeek)
	assert.Equal(t, domain.SourceDataset, r.Source)
	require.NotNil(t, r.PriceUSD)
	assert.InDelta(t, 210.5, *r.PriceUSD, 0.0001)

	*rows[0].PriceUSD = 1
	rows[0].DaysOfWeek[0] = 7
	assert.InDelta(t, 210.5, *got[0].PriceUSD, 0.0001, "price is copied")
}

func TestNormalize_DatasetRowUnknownPrice(t *testing.T) {
	got, rejected := Normalize(domain.FromDataset([]domain.DatasetRow{datasetRow("f1", "DAM", "IST", nil)}))

	assert.Empty(t, rejected)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].PriceUSD)
}

func TestNormalize_DropsRowsWithoutRouteSilently(t *testing.T) {
	noOrigin := datasetRow("no-origin", "", "IST", p(100))
	nilDestination := datasetRow("nil-dest", "DAM", "IST", p(100))
	nilDestination.Destination = nil

	got, rejected := Normalize(domain.FromDataset([]domain.DatasetRow{
		noOrigin,
		nilDestination,
		datasetRow("ok", "DAM", "IST", p(100)),
	}))

	assert.Empty(t, rejected)
	assert.Equal(t, []string{"ok"}, ids(got))
}

func TestNormalize_ReportsMalformedRows(t *testing.T) {
	raw := []domain.RawRecord{
		{Source: domain.SourceDataset, Dataset: ptrRow(datasetRow("loop", "DAM", "dam", p(1)))},
		{Source: "fax"},
		{Source: domain.SourceLive, Live: &domain.LiveOffer{BookingToken: "tok-empty"}},
		{Source: domain.SourceDataset, Dataset: ptrRow(datasetRow("ok", "DAM", "AMM", p(80)))},
	}

	got, rejected := Normalize(raw)

	assert.Equal(t, []string{"ok"}, ids(got))
	require.Len(t, rejected, 3)
	assert.Equal(t, "loop", rejected[0].RecordID)
	assert.Equal(t, "source", rejected[1].Field)
	assert.Equal(t, "#1", rejected[1].RecordID)
	assert.Equal(t, "tok-empty", rejected[2].RecordID)
	for _, r := range rejected {
		assert.ErrorIs(t, r, domain.ErrMalformedRecord)
	}
}

func TestNormalize_LiveOffer(t *testing.T) {
	offer := domain.LiveOffer{
		Flights: []domain.LiveSegment{
			{
				DepartureAirport: domain.LiveAirportTime{ID: "DAM", Time: "2024-05-10 06:20"},
				ArrivalAirport:   domain.LiveAirportTime{ID: "AMM", Time: "2024-05-10 07:10"},
				Duration:         50,
				Airline:          "Royal Jordanian",
				FlightNumber:     "RJ 436",
			},
			{
				DepartureAirport: domain.LiveAirportTime{ID: "AMM", Time: "2024-05-10 09:00"},
				ArrivalAirport:   domain.LiveAirportTime{ID: "JED", Time: "2024-05-10 11:30"},
				Duration:         150,
				Airline:          "Royal Jordanian",
				FlightNumber:     "RJ 700",
			},
		},
		Layovers:     []domain.LiveLayover{{ID: "AMM", Duration: 110}},
		Price:        p(312),
		BookingToken: "tok-1",
	}

	got, rejected := Normalize(domain.FromLive([]domain.LiveOffer{offer}))

	assert.Empty(t, rejected)
	require.Len(t, got, 1)
	r := got[0]
	_, err := uuid.Parse(r.ID)
	assert.NoError(t, err, "live records get a fresh UUID")
	assert.Equal(t, "DAM", r.OriginCode)
	assert.Equal(t, "JED", r.DestinationCode)
	assert.Equal(t, "RJ", r.AirlineCode)
	assert.Equal(t, "Royal Jordanian", r.AirlineName)
	assert.Equal(t, "06:20", r.DepartureTime)
	assert.Equal(t, "11:30", r.ArrivalTime)
	assert.Equal(t, 1, r.Stops)
	assert.Equal(t, 310, r.DurationMinutes, "segments plus layovers when total_duration is absent")
	assert.Equal(t, "tok-1", r.BookingToken)
	assert.Equal(t, domain.SourceLive, r.Source)
	assert.InDelta(t, 312, *r.PriceUSD, 0.0001)
}

func TestNormalize_LiveOfferTotalsAndStops(t *testing.T) {
	offer := domain.LiveOffer{
		Flights: []domain.LiveSegment{
			{DepartureAirport: domain.LiveAirportTime{ID: "DAM"}, ArrivalAirport: domain.LiveAirportTime{ID: "IST"}, FlightNumber: "TK1"},
			{DepartureAirport: domain.LiveAirportTime{ID: "IST"}, ArrivalAirport: domain.LiveAirportTime{ID: "CDG"}, FlightNumber: "TK2"},
		},
		TotalDuration: 415,
	}

	got, _ := Normalize(domain.FromLive([]domain.LiveOffer{offer}))

	require.Len(t, got, 1)
	assert.Equal(t, 415, got[0].DurationMinutes)
	assert.Equal(t, 1, got[0].Stops, "stops fall back to segment count when layovers are absent")
	assert.Equal(t, "TK", got[0].AirlineCode)
	assert.Nil(t, got[0].PriceUSD)
}

func TestAirlineCodeFromFlightNumber(t *testing.T) {
	tests := map[string]string{
		"RJ 436": "RJ",
		"fz1234": "FZ",
		"6E 12":  "6E",
		"Q":      "Q",
		"":       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, airlineCodeFromFlightNumber(in), in)
	}
}

func ptrRow(r domain.DatasetRow) *domain.DatasetRow {
	return &r
}
