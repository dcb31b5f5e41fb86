// Package mongo serves the flight dataset from MongoDB collections
// "airlines", "destinations" and "flights". Documents use string _id values that
// flights reference through airline_id, origin_id and destination_id.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flight-deals/syria-flight-deals/internal/adapter/dataset"
	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// Store implements domain.FlightDataset over a Mongo database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client for uri, pings it and returns a Store on database.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return NewStore(client, database), nil
}

// NewStore wraps an existing client.
func NewStore(client *mongo.Client, database string) *Store {
	return &Store{client: client, db: client.Database(database)}
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ListFlights implements domain.FlightDataset. The join with airlines and
// destinations happens in memory; the collections are small.
func (s *Store) ListFlights(ctx context.Context, activeOnly bool) ([]domain.DatasetRow, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	var snap dataset.Snapshot
	if err := findAll(ctx, s.db.Collection(dataset.FlightsCollection), filter, nil, &snap.Flights); err != nil {
		return nil, err
	}
	if err := findAll(ctx, s.db.Collection(dataset.AirlinesCollection), bson.M{}, nil, &snap.Airlines); err != nil {
		return nil, err
	}
	if err := findAll(ctx, s.db.Collection(dataset.DestinationsCollection), bson.M{}, nil, &snap.Destinations); err != nil {
		return nil, err
	}
	return snap.JoinFlights(activeOnly), nil
}

// ListAirlines implements domain.FlightDataset. An empty collection yields an
// empty, non-nil slice.
func (s *Store) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	out := make([]domain.Airline, 0)
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if err := findAll(ctx, s.db.Collection(dataset.AirlinesCollection), bson.M{"is_active": true}, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAirports implements domain.FlightDataset.
func (s *Store) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	out := make([]domain.Airport, 0)
	opts := options.Find().SetSort(bson.D{{Key: "city", Value: 1}})
	if err := findAll(ctx, s.db.Collection(dataset.DestinationsCollection), bson.M{"is_active": true}, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions, results interface{}) error {
	var findOpts []*options.FindOptions
	if opts != nil {
		findOpts = append(findOpts, opts)
	}
	cursor, err := coll.Find(ctx, filter, findOpts...)
	if err != nil {
		return fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return nil
}

var _ domain.FlightDataset = (*Store)(nil)
