package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking status values
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingActive    = "Active"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

// Booking represents a rental booking. Start and end dates are kept as
// the client-supplied date strings; createdAt/updatedAt are stamped
// server-side and updatedAt is refreshed on every update.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CarID          string             `bson:"carId" json:"carId"`
	UserID         string             `bson:"userId" json:"userId"`
	StartDate      string             `bson:"startDate" json:"startDate"`
	EndDate        string             `bson:"endDate" json:"endDate"`
	Status         string             `bson:"status" json:"status"`
	TotalAmount    float64            `bson:"totalAmount" json:"totalAmount"`
	PickupLocation string             `bson:"pickupLocation" json:"pickupLocation"`
	CustomerEmail  string             `bson:"customerEmail" json:"customerEmail"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
