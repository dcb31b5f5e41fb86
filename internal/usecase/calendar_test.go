package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

func TestBuildCalendar_DaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{1900, 2, 28},
		{2000, 2, 29},
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 12, 31},
	}

	for _, tt := range tests {
		t.Run(time.Month(tt.month).String(), func(t *testing.T) {
			days, err := BuildCalendar(nil, tt.year, tt.month, "")
			require.NoError(t, err)
			require.Len(t, days, tt.want)
			for i, d := range days {
				assert.Equal(t, i+1, d.Day)
				assert.Nil(t, d.Price, "empty input yields unknown prices")
			}
		})
	}
}

func TestBuildCalendar_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := BuildCalendar(nil, 2024, month, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestBuildCalendar_WeekdayCorrectness(t *testing.T) {
	records := []domain.FareRecord{
		fare("wed", "DAM", "IST", p(210), withDays(3)),
	}

	// March 2024 starts on a Friday.
	days, err := BuildCalendar(records, 2024, 3, "")
	require.NoError(t, err)
	require.Len(t, days, 31)

	for _, d := range days {
		date := time.Date(2024, time.March, d.Day, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == time.Wednesday {
			require.NotNil(t, d.Price, "day %d is a Wednesday", d.Day)
			assert.InDelta(t, 210, *d.Price, 0.0001)
		} else {
			assert.Nil(t, d.Price, "day %d is not a Wednesday", d.Day)
		}
	}
}

func TestBuildCalendar_SundayIsSeven(t *testing.T) {
	records := []domain.FareRecord{fare("sun", "DAM", "DXB", p(99), withDays(7))}

	// 2024-09-01 is a Sunday.
	days, err := BuildCalendar(records, 2024, 9, "")
	require.NoError(t, err)
	require.NotNil(t, days[0].Price)
	assert.Nil(t, days[1].Price)
}

func TestBuildCalendar_MinimumAndDestination(t *testing.T) {
	records := []domain.FareRecord{
		fare("ist-mon", "DAM", "IST", p(300), withDays(1)),
		fare("ist-mon-cheap", "IST", "DAM", p(250), withDays(1)),
		fare("dxb-mon", "DAM", "DXB", p(100), withDays(1)),
		fare("ist-unknown", "DAM", "IST", nil, withDays(2)),
		fare("no-schedule", "DAM", "IST", p(1), withDays()),
	}

	// 2024-01-01 is a Monday.
	all, err := BuildCalendar(records, 2024, 1, "")
	require.NoError(t, err)
	require.NotNil(t, all[0].Price)
	assert.InDelta(t, 100, *all[0].Price, 0.0001)
	assert.Nil(t, all[1].Price, "only unknown prices on Tuesday")

	ist, err := BuildCalendar(records, 2024, 1, "IST")
	require.NoError(t, err)
	require.NotNil(t, ist[0].Price)
	assert.InDelta(t, 250, *ist[0].Price, 0.0001, "destination matches either end")

	for _, d := range ist {
		if d.Price != nil {
			assert.NotEqual(t, 1.0, *d.Price, "records without weekdays contribute nothing")
		}
	}
}

func TestPriceTierOf(t *testing.T) {
	tests := []struct {
		name          string
		price, lo, hi float64
		want          domain.PriceTier
	}{
		{"degenerate range", 100, 100, 100, domain.TierCheap},
		{"lower band edge", 100, 0, 300, domain.TierCheap},
		{"minimum", 0, 0, 300, domain.TierCheap},
		{"middle band", 150, 0, 300, domain.TierMid},
		{"middle band edge", 200, 0, 300, domain.TierMid},
		{"upper band", 250, 0, 300, domain.TierExpensive},
		{"maximum", 300, 0, 300, domain.TierExpensive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceTierOf(tt.price, tt.lo, tt.hi))
		})
	}
}

func TestBuildPriceCalendar(t *testing.T) {
	records := []domain.FareRecord{
		fare("mon", "DAM", "IST", p(100), withDays(1)),
		fare("tue", "DAM", "IST", p(250), withDays(2)),
		fare("wed", "DAM", "IST", p(400), withDays(3)),
	}

	// February 2024: the 5th is a Monday.
	cal, err := BuildPriceCalendar(records, 2024, 2, "")
	require.NoError(t, err)

	assert.Equal(t, 2024, cal.Year)
	assert.Equal(t, 2, cal.Month)
	require.Len(t, cal.Days, 29)
	require.NotNil(t, cal.MinPrice)
	require.NotNil(t, cal.MaxPrice)
	assert.InDelta(t, 100, *cal.MinPrice, 0.0001)
	assert.InDelta(t, 400, *cal.MaxPrice, 0.0001)

	mon, tue, wed, thu := cal.Days[4], cal.Days[5], cal.Days[6], cal.Days[7]
	assert.Equal(t, 1, mon.Weekday)
	assert.Equal(t, domain.TierCheap, mon.Tier)
	assert.Equal(t, domain.TierMid, tue.Tier)
	assert.Equal(t, domain.TierExpensive, wed.Tier)
	assert.Equal(t, 4, thu.Weekday)
	assert.Nil(t, thu.Price)
	assert.Empty(t, thu.Tier)
}

func TestBuildPriceCalendar_Empty(t *testing.T) {
	cal, err := BuildPriceCalendar(nil, 2023, 2, "")
	require.NoError(t, err)
	assert.Len(t, cal.Days, 28)
	assert.Nil(t, cal.MinPrice)
	assert.Nil(t, cal.MaxPrice)
}

func TestFlightsOnDay(t *testing.T) {
	records := []domain.FareRecord{
		fare("unknown", "DAM", "IST", nil, withDays(5)),
		fare("pricey", "DAM", "DXB", p(400), withDays(5)),
		fare("cheap", "ALP", "IST", p(150), withDays(5, 6)),
		fare("saturday", "DAM", "AMM", p(90), withDays(6)),
	}

	// 2024-03-01 is a Friday.
	got, err := FlightsOnDay(records, 2024, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"cheap", "pricey", "unknown"}, ids(got))

	empty, err := FlightsOnDay(nil, 2024, 3, 1)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFlightsOnDay_InvalidDate(t *testing.T) {
	_, err := FlightsOnDay(nil, 2023, 2, 29)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = FlightsOnDay(nil, 2024, 13, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = FlightsOnDay(nil, 2024, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
