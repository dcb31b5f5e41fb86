package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Airlines: []domain.Airline{
			{ID: "al-2", Name: "flydubai", Code: "FZ", IsActive: true},
			{ID: "al-1", Name: "Cham Wings", Code: "6Q", IsActive: true},
			{ID: "al-3", Name: "Retired Air", Code: "XX", IsActive: false},
		},
		Destinations: []domain.Airport{
			{ID: "ap-dam", City: "Damascus", AirportCode: "DAM", IsActive: true},
			{ID: "ap-dxb", City: "Dubai", AirportCode: "DXB", IsActive: true},
			{ID: "ap-amm", City: "Amman", AirportCode: "AMM", IsActive: false},
		},
		Flights: []domain.DatasetRow{
			{ID: "f1", AirlineID: "al-2", OriginID: "ap-dam", DestinationID: "ap-dxb", DaysOfWeek: []int{1}, IsActive: true},
			{ID: "f2", AirlineID: "al-1", OriginID: "ap-dam", DestinationID: "ap-missing", IsActive: true},
			{ID: "f3", AirlineID: "al-1", OriginID: "ap-dxb", DestinationID: "ap-dam", IsActive: false},
		},
	}
}

func TestSnapshot_JoinFlights(t *testing.T) {
	s := testSnapshot()

	rows := s.JoinFlights(true)
	require.Len(t, rows, 2)

	assert.Equal(t, "f1", rows[0].ID)
	require.NotNil(t, rows[0].Airline)
	assert.Equal(t, "FZ", rows[0].Airline.Code)
	assert.Equal(t, "DAM", rows[0].Origin.AirportCode)
	assert.Equal(t, "DXB", rows[0].Destination.AirportCode)

	assert.Equal(t, "f2", rows[1].ID)
	assert.Nil(t, rows[1].Destination, "unresolved reference stays nil")

	rows[0].Airline.Code = "changed"
	rows[0].DaysOfWeek[0] = 7
	assert.Equal(t, "FZ", s.Airlines[0].Code, "joined rows do not alias the snapshot")
	assert.Equal(t, 1, s.Flights[0].DaysOfWeek[0])

	assert.Len(t, s.JoinFlights(false), 3)
}

func TestSnapshot_ActiveListings(t *testing.T) {
	s := testSnapshot()

	airlines := s.ActiveAirlines()
	require.Len(t, airlines, 2)
	assert.Equal(t, "Cham Wings", airlines[0].Name)
	assert.Equal(t, "flydubai", airlines[1].Name)

	airports := s.ActiveAirports()
	require.Len(t, airports, 2)
	assert.Equal(t, "Damascus", airports[0].City)
	assert.Equal(t, "Dubai", airports[1].City)
}
