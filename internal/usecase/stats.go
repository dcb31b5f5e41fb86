package usecase

import "github.com/flight-deals/syria-flight-deals/internal/domain"

// CheapestOf returns the record with the lowest known price, or nil when no record
// has a price. The first record wins on ties.
func CheapestOf(records []domain.FareRecord) *domain.FareRecord {
	var cheapest *domain.FareRecord
	for i := range records {
		if !records[i].HasPrice() {
			continue
		}
		if cheapest == nil || *records[i].PriceUSD < *cheapest.PriceUSD {
			cheapest = &records[i]
		}
	}
	if cheapest == nil {
		return nil
	}
	rec := *cheapest
	return &rec
}

// MinPriceAndDestinationCount summarizes the records touching airportCode.
//
// MinPrice is 0 when no touching record has a price: the explore teaser treats 0 as
// "show nothing". DestinationCount counts distinct airports at the other end.
func MinPriceAndDestinationCount(records []domain.FareRecord, airportCode string) domain.AirportSummary {
	summary := domain.AirportSummary{AirportCode: airportCode}
	others := make(map[string]struct{})
	var min *float64

	for _, r := range records {
		if !r.Touches(airportCode) {
			continue
		}
		others[r.Counterpart(airportCode)] = struct{}{}
		if r.HasPrice() && (min == nil || *r.PriceUSD < *min) {
			p := *r.PriceUSD
			min = &p
		}
	}

	summary.DestinationCount = len(others)
	if min != nil {
		summary.MinPrice = *min
	}
	return summary
}

// MinPriceForRoute returns the cheapest known price among records connecting airportA
// with any of counterparts, in either direction. It returns nil when nothing matches.
func MinPriceForRoute(records []domain.FareRecord, airportA string, counterparts []string) *float64 {
	set := make(map[string]struct{}, len(counterparts))
	for _, c := range counterparts {
		set[c] = struct{}{}
	}

	var min *float64
	for _, r := range records {
		if !r.HasPrice() || !r.Touches(airportA) {
			continue
		}
		if _, ok := set[r.Counterpart(airportA)]; !ok {
			continue
		}
		if min == nil || *r.PriceUSD < *min {
			p := *r.PriceUSD
			min = &p
		}
	}
	return min
}

// Destinations lists the distinct airports at the other end of records touching
// airportCode, in first-seen order.
func Destinations(records []domain.FareRecord, airportCode string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, r := range records {
		other := r.Counterpart(airportCode)
		if other == "" {
			continue
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		result = append(result, other)
	}
	return result
}
