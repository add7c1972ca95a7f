package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document matches the given id. Invalid
// object ids are reported the same way so handlers can treat both as a
// plain 404.
var ErrNotFound = errors.New("document not found")

// Connect connects to MongoDB and verifies the connection with a ping.
func Connect(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// Collections bundles the per-entity collections backing the API, one
// Mongo collection per entity.
type Collections struct {
	Users       UserCollection
	Cars        CarCollection
	Bookings    BookingCollection
	Maintenance MaintenanceCollection
	Messages    MessageCollection
}

// NewCollections wires the Mongo implementations against the named
// collections of the given database.
func NewCollections(database *mongo.Database) *Collections {
	return &Collections{
		Users:       &MongoUserCollection{Collection: database.Collection("users")},
		Cars:        &MongoCarCollection{Collection: database.Collection("cars")},
		Bookings:    &MongoBookingCollection{Collection: database.Collection("bookings")},
		Maintenance: &MongoMaintenanceCollection{Collection: database.Collection("maintenance")},
		Messages:    &MongoMessageCollection{Collection: database.Collection("messages")},
	}
}
