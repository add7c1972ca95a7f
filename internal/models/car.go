package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Car represents a rental vehicle. The /api/cars and /api/vehicles
// surfaces both operate on this one schema.
type Car struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Make  string             `bson:"make" json:"make"`
	Model string             `bson:"model" json:"model"`
	Year  int                `bson:"year" json:"year"`
	Price float64            `bson:"price" json:"price"`
}
