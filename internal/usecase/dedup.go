package usecase

import (
	"sort"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// CheapestPerRoute collapses records sharing the same origin-destination pair to the
// cheapest one.
//
// Behavior:
//   - A route whose every record has an unknown price is dropped
//   - Equal lowest prices keep the first record in input order
//   - Results are ordered by price ascending, route first-seen order breaking ties
//   - limit > 0 truncates the sorted result; limit <= 0 keeps everything
//   - Does NOT mutate the input slice
func CheapestPerRoute(records []domain.FareRecord, limit int) []domain.FareRecord {
	best := make(map[domain.RouteKey]int, len(records))
	order := make([]domain.RouteKey, 0, len(records))

	for i, r := range records {
		if !r.HasPrice() {
			continue
		}
		key := r.Route()
		j, seen := best[key]
		if !seen {
			best[key] = i
			order = append(order, key)
			continue
		}
		if *r.PriceUSD < *records[j].PriceUSD {
			best[key] = i
		}
	}

	result := make([]domain.FareRecord, 0, len(order))
	for _, key := range order {
		result = append(result, records[best[key]])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return *result[i].PriceUSD < *result[j].PriceUSD
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
