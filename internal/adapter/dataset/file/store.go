// Package file serves the flight dataset from a JSON file with the layout
// {"airlines": [...], "destinations": [...], "flights": [...]}.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/flight-deals/syria-flight-deals/internal/adapter/dataset"
	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// Store reads the dataset file on every call, so edits show up without a restart.
type Store struct {
	path string
}

// NewStore creates a Store for the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// ListFlights implements domain.FlightDataset.
func (s *Store) ListFlights(ctx context.Context, activeOnly bool) ([]domain.DatasetRow, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.JoinFlights(activeOnly), nil
}

// ListAirlines implements domain.FlightDataset.
func (s *Store) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.ActiveAirlines(), nil
}

// ListAirports implements domain.FlightDataset.
func (s *Store) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.ActiveAirports(), nil
}

func (s *Store) load(ctx context.Context) (dataset.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Snapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return dataset.Snapshot{}, fmt.Errorf("read dataset %s: %w", s.path, err)
	}

	var snap dataset.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return dataset.Snapshot{}, fmt.Errorf("parse dataset %s: %w", s.path, err)
	}
	return snap, nil
}

var _ domain.FlightDataset = (*Store)(nil)
