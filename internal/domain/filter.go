package domain

import "strings"

// SortKey defines the available orderings for fare results.
type SortKey string

// Available sort keys.
const (
	// SortByPrice sorts by price ascending; unknown prices go last
	SortByPrice SortKey = "price"

	// SortByDuration sorts by total duration ascending (shortest first)
	SortByDuration SortKey = "duration"

	// SortByDeparture sorts by departure time of day ascending (earliest first)
	SortByDeparture SortKey = "departure"
)

// IsValid checks if the sort key is a known value.
func (s SortKey) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortKey converts a string to a SortKey.
// Returns SortByPrice if the string is empty or unknown.
func ParseSortKey(s string) SortKey {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if key.IsValid() {
		return key
	}
	return SortByPrice
}

// FilterCriteria holds the optional predicates applied to fare results.
// The zero value filters nothing.
type FilterCriteria struct {
	// Airlines restricts results to these carrier codes; empty means any airline
	Airlines []string `json:"airlines,omitempty"`

	// MaxPrice drops fares above this amount; unpriced fares are dropped too when set
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// DirectOnly keeps only zero-stop itineraries
	DirectOnly bool `json:"directOnly,omitempty"`

	// DestinationCode keeps fares touching this airport at either end
	DestinationCode string `json:"destinationCode,omitempty"`
}

// IsEmpty reports whether no criterion is populated.
func (c FilterCriteria) IsEmpty() bool {
	return len(c.Airlines) == 0 && c.MaxPrice == nil && !c.DirectOnly && c.DestinationCode == ""
}

// PriceTier is a coarse price classification relative to a month's price range.
type PriceTier string

// Price tiers.
const (
	TierCheap     PriceTier = "cheap"
	TierMid       PriceTier = "mid"
	TierExpensive PriceTier = "expensive"
)
