package db

import (
	"context"

	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MaintenanceCollection defines the interface for maintenance job
// operations. FindJobs takes an equality filter so the secondary
// lookups (customer, mechanic, status) share one query path.
type MaintenanceCollection interface {
	InsertJob(ctx context.Context, job models.Maintenance) error
	FindJobs(ctx context.Context, filter bson.M) ([]models.Maintenance, error)
	FindJobByID(ctx context.Context, id string) (*models.Maintenance, error)
	UpdateJob(ctx context.Context, id string, job models.Maintenance) error
	DeleteJob(ctx context.Context, id string) error
}

// MongoMaintenanceCollection implements MaintenanceCollection for MongoDB
type MongoMaintenanceCollection struct {
	Collection *mongo.Collection
}

// InsertJob inserts a maintenance job into the collection.
func (c *MongoMaintenanceCollection) InsertJob(ctx context.Context, job models.Maintenance) error {
	_, err := c.Collection.InsertOne(ctx, job)
	return err
}

// FindJobs queries maintenance jobs matching the filter.
func (c *MongoMaintenanceCollection) FindJobs(ctx context.Context, filter bson.M) ([]models.Maintenance, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Maintenance
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindJobByID finds a maintenance job by its ID.
func (c *MongoMaintenanceCollection) FindJobByID(ctx context.Context, id string) (*models.Maintenance, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var job models.Maintenance
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob replaces a maintenance job document by id.
func (c *MongoMaintenanceCollection) UpdateJob(ctx context.Context, id string, job models.Maintenance) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	job.ID = objectID
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, job)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteJob deletes a maintenance job by id.
func (c *MongoMaintenanceCollection) DeleteJob(ctx context.Context, id string) error {
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
