package db

import (
	"context"

	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MessageCollection defines the interface for message data operations.
// FindMessages takes a filter so the sender/receiver/conversation
// lookups share one query path.
type MessageCollection interface {
	InsertMessage(ctx context.Context, message models.Message) error
	FindMessages(ctx context.Context, filter bson.M) ([]models.Message, error)
	FindMessageByID(ctx context.Context, id string) (*models.Message, error)
	MarkRead(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) error
}

// MongoMessageCollection implements MessageCollection for MongoDB
type MongoMessageCollection struct {
	Collection *mongo.Collection
}

// InsertMessage inserts a message record into the collection.
func (c *MongoMessageCollection) InsertMessage(ctx context.Context, message models.Message) error {
	_, err := c.Collection.InsertOne(ctx, message)
	return err
}

// FindMessages queries messages matching the filter.
func (c *MongoMessageCollection) FindMessages(ctx context.Context, filter bson.M) ([]models.Message, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// FindMessageByID finds a message by its ID.
func (c *MongoMessageCollection) FindMessageByID(ctx context.Context, id string) (*models.Message, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var message models.Message
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&message)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// MarkRead sets the read flag on a message.
func (c *MongoMessageCollection) MarkRead(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMessage deletes a message by id.
func (c *MongoMessageCollection) DeleteMessage(ctx context.Context, id string) error {
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
