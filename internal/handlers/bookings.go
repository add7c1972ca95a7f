package handlers

import (
	"net/http"
	"time"

	"github.com/ShounakShelke/carcircle-backend/internal/db"
	"github.com/ShounakShelke/carcircle-backend/internal/events"
	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingHandler handles CRUD over the bookings collection. State
// changes are published as fleet events.
type BookingHandler struct {
	bookings  db.BookingCollection
	publisher events.Publisher
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings db.BookingCollection, publisher events.Publisher) *BookingHandler {
	return &BookingHandler{bookings: bookings, publisher: publisher}
}

// ListBookings returns all bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookings.FindBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns a single booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookings.FindBookingByID(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking inserts a booking. Status defaults to Pending and
// createdAt/updatedAt are stamped server-side.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	booking.ID = primitive.NewObjectID()
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := h.bookings.InsertBooking(c.Request.Context(), booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	h.publisher.Publish(events.TopicBookings, events.Event{
		Action: "created",
		ID:     booking.ID.Hex(),
		Status: booking.Status,
	})
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking overwrites the booking's mutable fields and refreshes
// updatedAt.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	existing, err := h.bookings.FindBookingByID(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}

	existing.CarID = req.CarID
	existing.UserID = req.UserID
	existing.StartDate = req.StartDate
	existing.EndDate = req.EndDate
	existing.Status = req.Status
	existing.TotalAmount = req.TotalAmount
	existing.PickupLocation = req.PickupLocation
	existing.CustomerEmail = req.CustomerEmail
	existing.UpdatedAt = time.Now()

	if err := h.bookings.UpdateBooking(c.Request.Context(), c.Param("id"), *existing); err != nil {
		if err == db.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	h.publisher.Publish(events.TopicBookings, events.Event{
		Action: "updated",
		ID:     existing.ID.Hex(),
		Status: existing.Status,
	})
	c.JSON(http.StatusOK, existing)
}

// DeleteBooking removes a booking by id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	err := h.bookings.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	h.publisher.Publish(events.TopicBookings, events.Event{
		Action: "deleted",
		ID:     c.Param("id"),
	})
	c.Status(http.StatusNoContent)
}
