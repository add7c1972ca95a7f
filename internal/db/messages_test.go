package db

import (
	"context"
	"testing"
	"time"

	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoMessageCollection_MarkRead(t *testing.T) {
	database := testDatabase(t)
	collection := database.Collection("messages")
	collection.Drop(context.Background())

	messages := &MongoMessageCollection{Collection: collection}
	ctx := context.Background()

	message := models.Message{
		ID:         primitive.NewObjectID(),
		SenderID:   "user-1",
		ReceiverID: "user-2",
		Message:    "brakes are done",
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	require.NoError(t, messages.InsertMessage(ctx, message))

	stored, err := messages.FindMessageByID(ctx, message.ID.Hex())
	require.NoError(t, err)
	assert.False(t, stored.Read)

	require.NoError(t, messages.MarkRead(ctx, message.ID.Hex()))

	stored, err = messages.FindMessageByID(ctx, message.ID.Hex())
	require.NoError(t, err)
	assert.True(t, stored.Read)

	err = messages.MarkRead(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoMessageCollection_FilterBySender(t *testing.T) {
	database := testDatabase(t)
	collection := database.Collection("messages")
	collection.Drop(context.Background())

	messages := &MongoMessageCollection{Collection: collection}
	ctx := context.Background()

	for _, m := range []models.Message{
		{ID: primitive.NewObjectID(), SenderID: "user-1", ReceiverID: "user-2", Message: "first"},
		{ID: primitive.NewObjectID(), SenderID: "user-1", ReceiverID: models.BroadcastReceiver, Message: "second"},
		{ID: primitive.NewObjectID(), SenderID: "user-3", ReceiverID: "user-1", Message: "third"},
	} {
		require.NoError(t, messages.InsertMessage(ctx, m))
	}

	fromUser1, err := messages.FindMessages(ctx, bson.M{"senderId": "user-1"})
	require.NoError(t, err)
	assert.Len(t, fromUser1, 2)

	toUser1, err := messages.FindMessages(ctx, bson.M{"receiverId": "user-1"})
	require.NoError(t, err)
	assert.Len(t, toUser1, 1)
	assert.Equal(t, "third", toUser1[0].Message)
}
