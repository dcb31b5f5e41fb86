// Package dataset holds what the dataset backends share: the in-memory snapshot of
// the three collections and the join that turns flight rows into DatasetRows.
package dataset

import (
	"sort"
	"strings"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// Collection names, shared by the file layout and the Mongo database.
const (
	AirlinesCollection     = "airlines"
	DestinationsCollection = "destinations"
	FlightsCollection      = "flights"
)

// Snapshot is the full content of the dataset.
type Snapshot struct {
	Airlines     []domain.Airline    `json:"airlines"`
	Destinations []domain.Airport    `json:"destinations"`
	Flights      []domain.DatasetRow `json:"flights"`
}

// JoinFlights attaches airline, origin and destination to every flight row.
// References that cannot be resolved leave the nested field nil; the normalizer
// drops such rows. With activeOnly set, inactive flights are skipped.
func (s Snapshot) JoinFlights(activeOnly bool) []domain.DatasetRow {
	airlines := make(map[string]*domain.Airline, len(s.Airlines))
	for i := range s.Airlines {
		airlines[s.Airlines[i].ID] = &s.Airlines[i]
	}
	airports := make(map[string]*domain.Airport, len(s.Destinations))
	for i := range s.Destinations {
		airports[s.Destinations[i].ID] = &s.Destinations[i]
	}

	rows := make([]domain.DatasetRow, 0, len(s.Flights))
	for _, f := range s.Flights {
		if activeOnly && !f.IsActive {
			continue
		}
		row := f
		row.DaysOfWeek = append([]int(nil), f.DaysOfWeek...)
		if a, ok := airlines[f.AirlineID]; ok {
			cp := *a
			row.Airline = &cp
		}
		if o, ok := airports[f.OriginID]; ok {
			cp := *o
			row.Origin = &cp
		}
		if d, ok := airports[f.DestinationID]; ok {
			cp := *d
			row.Destination = &cp
		}
		rows = append(rows, row)
	}
	return rows
}

// ActiveAirlines returns the active airlines ordered by name.
func (s Snapshot) ActiveAirlines() []domain.Airline {
	out := make([]domain.Airline, 0, len(s.Airlines))
	for _, a := range s.Airlines {
		if a.IsActive {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// ActiveAirports returns the active destinations ordered by city.
func (s Snapshot) ActiveAirports() []domain.Airport {
	out := make([]domain.Airport, 0, len(s.Destinations))
	for _, d := range s.Destinations {
		if d.IsActive {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].City) < strings.ToLower(out[j].City)
	})
	return out
}
