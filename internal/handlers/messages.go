package handlers

import (
	"net/http"
	"time"

	"github.com/ShounakShelke/carcircle-backend/internal/db"
	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageHandler handles the messages collection: send with
// normalization, read marking, and sender/receiver/conversation lookups.
type MessageHandler struct {
	messages db.MessageCollection
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messages db.MessageCollection) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// ListMessages returns all messages. The optional role query parameter
// is accepted for client compatibility; filtering by role is not
// implemented and all messages are returned.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	h.listFiltered(c, bson.M{})
}

// MessagesBySender returns messages sent by one user.
func (h *MessageHandler) MessagesBySender(c *gin.Context) {
	h.listFiltered(c, bson.M{"senderId": c.Param("id")})
}

// MessagesByReceiver returns messages addressed to one user.
func (h *MessageHandler) MessagesByReceiver(c *gin.Context) {
	h.listFiltered(c, bson.M{"receiverId": c.Param("id")})
}

// Conversation returns the messages exchanged between two users, in
// either direction. Ordering follows the store's native order.
func (h *MessageHandler) Conversation(c *gin.Context) {
	user1 := c.Query("user1")
	user2 := c.Query("user2")
	if user1 == "" || user2 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user1 and user2 are required"})
		return
	}

	filter := bson.M{
		"$or": bson.A{
			bson.M{"senderId": user1, "receiverId": user2},
			bson.M{"senderId": user2, "receiverId": user1},
		},
	}
	h.listFiltered(c, filter)
}

func (h *MessageHandler) listFiltered(c *gin.Context, filter bson.M) {
	messages, err := h.messages.FindMessages(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

// GetMessage returns a single message by id.
func (h *MessageHandler) GetMessage(c *gin.Context) {
	message, err := h.messages.FindMessageByID(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch message"})
		return
	}
	c.JSON(http.StatusOK, message)
}

// SendMessage stores a message after normalizing the two client shapes.
// A receiver of "all" is stored literally; there is no fan-out.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var message models.Message
	if err := c.ShouldBindJSON(&message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if message.Timestamp == "" {
		message.Timestamp = time.Now().Format(time.RFC3339)
	}
	message.Normalize()
	message.ID = primitive.NewObjectID()

	if err := h.messages.InsertMessage(c.Request.Context(), message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusOK, message)
}

// MarkRead flags a message as read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	err := h.messages.MarkRead(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark message as read"})
		return
	}

	message, err := h.messages.FindMessageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch message"})
		return
	}
	c.JSON(http.StatusOK, message)
}

// DeleteMessage removes a message by id.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	err := h.messages.DeleteMessage(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.Status(http.StatusNoContent)
}
