package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	client, err := Connect(uri)
	if err != nil {
		t.Skipf("mongo unreachable: %v, skipping integration test", err)
	}
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	return client.Database("test_carcircle")
}

func TestMongoBookingCollection_CRUD(t *testing.T) {
	database := testDatabase(t)
	collection := database.Collection("bookings")
	collection.Drop(context.Background())

	bookings := &MongoBookingCollection{Collection: collection}
	ctx := context.Background()

	booking := models.Booking{
		ID:        primitive.NewObjectID(),
		CarID:     "car-1",
		UserID:    "user-1",
		StartDate: "2024-02-01",
		EndDate:   "2024-02-03",
		Status:    models.BookingPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, bookings.InsertBooking(ctx, booking))

	found, err := bookings.FindBookingByID(ctx, booking.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, booking.CarID, found.CarID)
	assert.Equal(t, models.BookingPending, found.Status)

	found.Status = models.BookingConfirmed
	require.NoError(t, bookings.UpdateBooking(ctx, booking.ID.Hex(), *found))

	updated, err := bookings.FindBookingByID(ctx, booking.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)

	all, err := bookings.FindBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, bookings.DeleteBooking(ctx, booking.ID.Hex()))

	_, err = bookings.FindBookingByID(ctx, booking.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoBookingCollection_NotFound(t *testing.T) {
	database := testDatabase(t)
	collection := database.Collection("bookings")
	collection.Drop(context.Background())

	bookings := &MongoBookingCollection{Collection: collection}
	ctx := context.Background()
	missing := primitive.NewObjectID().Hex()

	_, err := bookings.FindBookingByID(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)

	err = bookings.UpdateBooking(ctx, missing, models.Booking{})
	assert.ErrorIs(t, err, ErrNotFound)

	err = bookings.DeleteBooking(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)

	// Malformed ids behave like absent documents.
	_, err = bookings.FindBookingByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
