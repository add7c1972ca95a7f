package db

import (
	"context"

	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingCollection defines the interface for booking data operations
type BookingCollection interface {
	InsertBooking(ctx context.Context, booking models.Booking) error
	FindBookings(ctx context.Context) ([]models.Booking, error)
	FindBookingByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, booking models.Booking) error
	DeleteBooking(ctx context.Context, id string) error
}

// MongoBookingCollection implements BookingCollection for MongoDB
type MongoBookingCollection struct {
	Collection *mongo.Collection
}

// InsertBooking inserts a booking record into the collection.
func (c *MongoBookingCollection) InsertBooking(ctx context.Context, booking models.Booking) error {
	_, err := c.Collection.InsertOne(ctx, booking)
	return err
}

// FindBookings returns all bookings.
func (c *MongoBookingCollection) FindBookings(ctx context.Context) ([]models.Booking, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindBookingByID finds a booking by its ID.
func (c *MongoBookingCollection) FindBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var booking models.Booking
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking replaces a booking document by id.
func (c *MongoBookingCollection) UpdateBooking(ctx context.Context, id string, booking models.Booking) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	booking.ID = objectID
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, booking)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBooking deletes a booking by id.
func (c *MongoBookingCollection) DeleteBooking(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
