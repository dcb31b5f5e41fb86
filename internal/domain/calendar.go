package domain

// CalendarDayPrice is the cheapest price found for one calendar day.
type CalendarDayPrice struct {
	// Day is the day of the month, starting at 1
	Day int `json:"day"`

	// Price is the minimum known price, nil when no priced schedule runs that weekday
	Price *float64 `json:"price"`
}

// CalendarDay is a CalendarDayPrice enriched for display.
type CalendarDay struct {
	CalendarDayPrice

	// Weekday is the ISO weekday (1=Monday..7=Sunday)
	Weekday int `json:"weekday"`

	// Tier is set only for priced days
	Tier PriceTier `json:"tier,omitempty"`
}

// PriceCalendar is a month of cheapest prices.
type PriceCalendar struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	// MinPrice and MaxPrice span the priced days; both are nil when no day is priced
	MinPrice *float64 `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`

	Days []CalendarDay `json:"days"`
}
