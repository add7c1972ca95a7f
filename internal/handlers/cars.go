package handlers

import (
	"net/http"

	"github.com/ShounakShelke/carcircle-backend/internal/db"
	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarHandler handles CRUD over the cars collection. Registered under
// both /api/cars and /api/vehicles; there is a single schema and a
// single backing collection.
type CarHandler struct {
	cars db.CarCollection
}

// NewCarHandler creates a new car handler
func NewCarHandler(cars db.CarCollection) *CarHandler {
	return &CarHandler{cars: cars}
}

// ListCars returns all cars.
func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.cars.FindCars(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cars"})
		return
	}
	if cars == nil {
		cars = []models.Car{}
	}
	c.JSON(http.StatusOK, cars)
}

// GetCar returns a single car by id.
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.cars.FindCarByID(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car"})
		return
	}
	c.JSON(http.StatusOK, car)
}

// CreateCar inserts a car.
func (h *CarHandler) CreateCar(c *gin.Context) {
	var car models.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	car.ID = primitive.NewObjectID()
	if err := h.cars.InsertCar(c.Request.Context(), car); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car"})
		return
	}
	c.JSON(http.StatusOK, car)
}

// UpdateCar overwrites a car; the id always comes from the path.
func (h *CarHandler) UpdateCar(c *gin.Context) {
	var car models.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	err := h.cars.UpdateCar(c.Request.Context(), c.Param("id"), car)
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
		return
	}

	car.ID, _ = primitive.ObjectIDFromHex(c.Param("id"))
	c.JSON(http.StatusOK, car)
}

// DeleteCar removes a car by id.
func (h *CarHandler) DeleteCar(c *gin.Context) {
	err := h.cars.DeleteCar(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
		return
	}
	c.Status(http.StatusNoContent)
}
