package db

import (
	"context"

	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CarCollection defines the interface for car data operations
type CarCollection interface {
	InsertCar(ctx context.Context, car models.Car) error
	FindCars(ctx context.Context) ([]models.Car, error)
	FindCarByID(ctx context.Context, id string) (*models.Car, error)
	UpdateCar(ctx context.Context, id string, car models.Car) error
	DeleteCar(ctx context.Context, id string) error
}

// MongoCarCollection implements CarCollection for MongoDB
type MongoCarCollection struct {
	Collection *mongo.Collection
}

// InsertCar inserts a car record into the collection.
func (c *MongoCarCollection) InsertCar(ctx context.Context, car models.Car) error {
	_, err := c.Collection.InsertOne(ctx, car)
	return err
}

// FindCars returns all cars.
func (c *MongoCarCollection) FindCars(ctx context.Context) ([]models.Car, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// FindCarByID finds a car by its ID.
func (c *MongoCarCollection) FindCarByID(ctx context.Context, id string) (*models.Car, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var car models.Car
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&car)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// UpdateCar replaces a car document by id.
func (c *MongoCarCollection) UpdateCar(ctx context.Context, id string, car models.Car) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	car.ID = objectID
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, car)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCar deletes a car by id.
func (c *MongoCarCollection) DeleteCar(ctx context.Context, id string) error {
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
