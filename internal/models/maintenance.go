package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Maintenance priority values
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Maintenance status values
const (
	MaintenancePending    = "Pending"
	MaintenanceInProgress = "In Progress"
	MaintenanceCompleted  = "Completed"
	MaintenanceCancelled  = "Cancelled"
)

// Maintenance represents a repair or service job on a vehicle.
// CompletedAt is set when the job first transitions to Completed and is
// never cleared by later status changes.
type Maintenance struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID        string             `bson:"vehicleId" json:"vehicleId"`
	CustomerID       string             `bson:"customerId" json:"customerId"`
	Issue            string             `bson:"issue" json:"issue"`
	Priority         string             `bson:"priority" json:"priority"`
	Status           string             `bson:"status" json:"status"`
	AssignedMechanic string             `bson:"assignedMechanic" json:"assignedMechanic"`
	Deadline         string             `bson:"deadline" json:"deadline"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	CompletedAt      *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
