package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// ApplyFilters runs the filter/sort pipeline over fare records.
//
// Behavior:
//   - Every record is checked first; malformed ones (bad time string, negative duration,
//     stops or price, missing codes) are excluded and reported as FormatErrors
//   - Filters are conjunctive: direct-only, airline allow-list, max price, destination
//   - With MaxPrice set, records with unknown prices are excluded
//   - Sorting is stable; unknown prices sort after every known price
//   - Unknown sort keys fall back to price
//   - Does NOT mutate the input slice or its elements
func ApplyFilters(records []domain.FareRecord, criteria domain.FilterCriteria, sortKey domain.SortKey) ([]domain.FareRecord, []*domain.FormatError) {
	var airlineSet map[string]struct{}
	if len(criteria.Airlines) > 0 {
		airlineSet = buildAirlineSet(criteria.Airlines)
	}
	destination := normalizeCode(criteria.DestinationCode)

	type candidate struct {
		rec       domain.FareRecord
		departure int
	}
	kept := make([]candidate, 0, len(records))
	var rejected []*domain.FormatError

	for _, r := range records {
		departure, err := checkRecord(r)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		if !passesAllFilters(r, criteria, airlineSet, destination) {
			continue
		}
		kept = append(kept, candidate{rec: r, departure: departure})
	}

	if !sortKey.IsValid() {
		sortKey = domain.SortByPrice
	}

	switch sortKey {
	case domain.SortByPrice:
		sort.SliceStable(kept, func(i, j int) bool {
			return priceLess(kept[i].rec, kept[j].rec)
		})
	case domain.SortByDuration:
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].rec.DurationMinutes < kept[j].rec.DurationMinutes
		})
	case domain.SortByDeparture:
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].departure < kept[j].departure
		})
	}

	result := make([]domain.FareRecord, len(kept))
	for i, c := range kept {
		result[i] = c.rec
	}
	return result, rejected
}

// passesAllFilters checks a record against every populated criterion.
func passesAllFilters(r domain.FareRecord, criteria domain.FilterCriteria, airlineSet map[string]struct{}, destination string) bool {
	// Direct-only: zero stops
	if criteria.DirectOnly && r.Stops != 0 {
		return false
	}

	// Airline allow-list
	if len(airlineSet) > 0 && !isAirlineInSet(r.AirlineCode, airlineSet) {
		return false
	}

	// Max price: an unknown price cannot be proven under the bound
	if criteria.MaxPrice != nil && (!r.HasPrice() || *r.PriceUSD > *criteria.MaxPrice) {
		return false
	}

	// Destination at either end
	if destination != "" && !r.Touches(destination) {
		return false
	}

	return true
}

// checkRecord validates the fields the pipeline compares on and returns the departure
// time as seconds since midnight.
func checkRecord(r domain.FareRecord) (int, *domain.FormatError) {
	if r.OriginCode == "" || r.DestinationCode == "" {
		return 0, domain.NewFormatError(r.ID, "route", "origin and destination are required")
	}
	departure, ok := parseClock(r.DepartureTime)
	if !ok {
		return 0, domain.NewFormatError(r.ID, "departureTime", "malformed time "+strconv.Quote(r.DepartureTime))
	}
	if r.ArrivalTime != "" {
		if _, ok := parseClock(r.ArrivalTime); !ok {
			return 0, domain.NewFormatError(r.ID, "arrivalTime", "malformed time "+strconv.Quote(r.ArrivalTime))
		}
	}
	if r.DurationMinutes < 0 {
		return 0, domain.NewFormatError(r.ID, "durationMinutes", "must not be negative")
	}
	if r.Stops < 0 {
		return 0, domain.NewFormatError(r.ID, "stops", "must not be negative")
	}
	if r.HasPrice() && *r.PriceUSD < 0 {
		return 0, domain.NewFormatError(r.ID, "priceUsd", "must not be negative")
	}
	return departure, nil
}

// parseClock parses "HH:MM" or "HH:MM:SS" into seconds since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	limits := []int{23, 59, 59}
	total := 0
	for i, p := range parts {
		if len(p) != 2 {
			return 0, false
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > limits[i] {
			return 0, false
		}
		switch i {
		case 0:
			total += v * 3600
		case 1:
			total += v * 60
		default:
			total += v
		}
	}
	return total, true
}

// priceLess orders known prices ascending and puts unknown prices last.
func priceLess(a, b domain.FareRecord) bool {
	switch {
	case !a.HasPrice():
		return false
	case !b.HasPrice():
		return true
	default:
		return *a.PriceUSD < *b.PriceUSD
	}
}

// buildAirlineSet creates a case-insensitive lookup set from a list of airline codes.
func buildAirlineSet(airlines []string) map[string]struct{} {
	set := make(map[string]struct{}, len(airlines))
	for _, code := range airlines {
		set[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}
	return set
}

// isAirlineInSet checks if an airline code is in the allowed set (case-insensitive).
func isAirlineInSet(code string, set map[string]struct{}) bool {
	_, exists := set[strings.ToUpper(code)]
	return exists
}
