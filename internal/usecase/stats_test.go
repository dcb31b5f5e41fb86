package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

func TestCheapestOf(t *testing.T) {
	assert.Nil(t, CheapestOf(nil))
	assert.Nil(t, CheapestOf([]domain.FareRecord{fare("x", "DAM", "IST", nil)}))

	records := []domain.FareRecord{
		fare("a", "DAM", "IST", p(200)),
		fare("b", "DAM", "DXB", p(150)),
		fare("c", "DAM", "AMM", p(150)),
	}
	got := CheapestOf(records)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID, "first record wins ties")

	got.ID = "changed"
	assert.Equal(t, "b", records[1].ID, "result is a copy")
}

func TestMinPriceAndDestinationCount(t *testing.T) {
	records := []domain.FareRecord{
		fare("1", "DAM", "IST", p(300)),
		fare("2", "IST", "DAM", p(280)),
		fare("3", "DAM", "DXB", nil),
		fare("4", "ALP", "DXB", p(50)),
	}

	got := MinPriceAndDestinationCount(records, "DAM")
	assert.Equal(t, domain.AirportSummary{AirportCode: "DAM", MinPrice: 280, DestinationCount: 2}, got)

	unpriced := MinPriceAndDestinationCount([]domain.FareRecord{fare("x", "DAM", "IST", nil)}, "DAM")
	assert.Equal(t, 0.0, unpriced.MinPrice, "0 means show nothing")
	assert.Equal(t, 1, unpriced.DestinationCount)

	empty := MinPriceAndDestinationCount(nil, "DAM")
	assert.Equal(t, 0.0, empty.MinPrice)
	assert.Equal(t, 0, empty.DestinationCount)
}

func TestMinPriceForRoute(t *testing.T) {
	records := []domain.FareRecord{
		fare("1", "DAM", "IST", p(300)),
		fare("2", "IST", "DAM", p(280)),
		fare("3", "DAM", "SAW", p(260)),
		fare("4", "DAM", "DXB", p(100)),
		fare("5", "SAW", "ALP", p(10)),
	}

	got := MinPriceForRoute(records, "DAM", []string{"IST", "SAW"})
	require.NotNil(t, got)
	assert.InDelta(t, 260, *got, 0.0001)

	assert.Nil(t, MinPriceForRoute(records, "DAM", []string{"CDG"}), "nil, not 0, when nothing matches")
	assert.Nil(t, MinPriceForRoute(records, "DAM", nil))
	assert.Nil(t, MinPriceForRoute(nil, "DAM", []string{"IST"}))
}

func TestDestinations(t *testing.T) {
	records := []domain.FareRecord{
		fare("1", "DAM", "IST", p(300)),
		fare("2", "DXB", "DAM", p(280)),
		fare("3", "DAM", "IST", p(260)),
		fare("4", "ALP", "AMM", p(100)),
	}

	assert.Equal(t, []string{"IST", "DXB"}, Destinations(records, "DAM"))
	assert.Equal(t, []string{}, Destinations(nil, "DAM"))
}

// DAM and JED linked by three records priced 120, unknown and 95.
func TestAggregates_DamascusJeddahScenario(t *testing.T) {
	records := []domain.FareRecord{
		fare("r120", "DAM", "JED", p(120)),
		fare("rnull", "DAM", "JED", nil),
		fare("r95", "DAM", "JED", p(95)),
	}

	cheapest := CheapestOf(records)
	require.NotNil(t, cheapest)
	assert.Equal(t, "r95", cheapest.ID)

	perRoute := CheapestPerRoute(records, 0)
	require.Len(t, perRoute, 1)
	assert.Equal(t, "r95", perRoute[0].ID)
	assert.InDelta(t, 95, *perRoute[0].PriceUSD, 0.0001)

	summary := MinPriceAndDestinationCount(records, "DAM")
	assert.InDelta(t, 95, summary.MinPrice, 0.0001)
	assert.Equal(t, 1, summary.DestinationCount)
}

func TestAggregates_EmptyInput(t *testing.T) {
	normalized, rejected := Normalize(nil)
	assert.Empty(t, normalized)
	assert.Empty(t, rejected)

	assert.Empty(t, CheapestPerRoute(nil, 6))

	days, err := BuildCalendar(nil, 2024, 5, "DAM")
	require.NoError(t, err)
	assert.Len(t, days, 31)

	filtered, rejected := ApplyFilters(nil, domain.FilterCriteria{}, domain.SortByPrice)
	assert.Empty(t, filtered)
	assert.Empty(t, rejected)

	assert.Nil(t, CheapestOf(nil))
	assert.Equal(t, domain.AirportSummary{AirportCode: "DAM"}, MinPriceAndDestinationCount(nil, "DAM"))
	assert.Nil(t, MinPriceForRoute(nil, "DAM", []string{"JED"}))
}
