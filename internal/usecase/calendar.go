package usecase

import (
	"sort"
	"time"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// isoWeekday converts time.Weekday (Sunday=0) to ISO numbering (Monday=1..Sunday=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// daysIn returns the number of days in the month. month is 1-based.
func daysIn(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return domain.WrapInvalidArgument("month must be between 1 and 12, got %d", month)
	}
	return nil
}

// BuildCalendar computes the cheapest price for every day of a month from weekly schedules.
//
// month is 1-based (1 = January), as in time.Month. A day's price is the minimum known
// price among records operating on that day's ISO weekday and, when destination is not
// empty, touching destination at either end. Records without weekday data contribute to
// no day. An out-of-range month returns an error wrapping domain.ErrInvalidArgument.
func BuildCalendar(records []domain.FareRecord, year, month int, destination string) ([]domain.CalendarDayPrice, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	// Cheapest price per ISO weekday; index 0 unused.
	var perWeekday [8]*float64
	for _, r := range records {
		if !r.HasPrice() {
			continue
		}
		if destination != "" && !r.Touches(destination) {
			continue
		}
		for _, wd := range r.DaysOfWeek {
			if wd < 1 || wd > 7 {
				continue
			}
			if perWeekday[wd] == nil || *r.PriceUSD < *perWeekday[wd] {
				p := *r.PriceUSD
				perWeekday[wd] = &p
			}
		}
	}

	n := daysIn(year, month)
	days := make([]domain.CalendarDayPrice, n)
	for d := 1; d <= n; d++ {
		wd := isoWeekday(time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC))
		days[d-1] = domain.CalendarDayPrice{Day: d, Price: copyPrice(perWeekday[wd])}
	}
	return days, nil
}

// PriceTierOf splits [min, max] into three equal-width bands and classifies price.
// A degenerate range (min == max) is always cheap.
func PriceTierOf(price, min, max float64) domain.PriceTier {
	if max == min {
		return domain.TierCheap
	}
	third := (max - min) / 3
	switch {
	case price <= min+third:
		return domain.TierCheap
	case price <= min+third*2:
		return domain.TierMid
	default:
		return domain.TierExpensive
	}
}

// BuildPriceCalendar is BuildCalendar plus the month's price range and a tier for
// every priced day.
func BuildPriceCalendar(records []domain.FareRecord, year, month int, destination string) (domain.PriceCalendar, error) {
	days, err := BuildCalendar(records, year, month, destination)
	if err != nil {
		return domain.PriceCalendar{}, err
	}

	cal := domain.PriceCalendar{
		Year:  year,
		Month: month,
		Days:  make([]domain.CalendarDay, len(days)),
	}

	for _, d := range days {
		if d.Price == nil {
			continue
		}
		if cal.MinPrice == nil || *d.Price < *cal.MinPrice {
			cal.MinPrice = copyPrice(d.Price)
		}
		if cal.MaxPrice == nil || *d.Price > *cal.MaxPrice {
			cal.MaxPrice = copyPrice(d.Price)
		}
	}

	for i, d := range days {
		day := domain.CalendarDay{
			CalendarDayPrice: d,
			Weekday:          isoWeekday(time.Date(year, time.Month(month), d.Day, 0, 0, 0, 0, time.UTC)),
		}
		if d.Price != nil {
			day.Tier = PriceTierOf(*d.Price, *cal.MinPrice, *cal.MaxPrice)
		}
		cal.Days[i] = day
	}

	return cal, nil
}

// FlightsOnDay returns the records operating on the given date's weekday, cheapest first
// with unknown prices last. An invalid date returns an error wrapping ErrInvalidArgument.
func FlightsOnDay(records []domain.FareRecord, year, month, day int) ([]domain.FareRecord, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if day < 1 || day > daysIn(year, month) {
		return nil, domain.WrapInvalidArgument("day must be between 1 and %d, got %d", daysIn(year, month), day)
	}

	wd := isoWeekday(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
	result := make([]domain.FareRecord, 0, len(records))
	for _, r := range records {
		if r.OperatesOn(wd) {
			result = append(result, r)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return priceLess(result[i], result[j])
	})
	return result, nil
}
