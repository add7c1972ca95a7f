package handlers

import (
	"net/http"
	"time"

	"github.com/ShounakShelke/carcircle-backend/internal/db"
	"github.com/ShounakShelke/carcircle-backend/internal/events"
	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceHandler handles CRUD over the maintenance collection plus
// the customer/mechanic/status lookups.
type MaintenanceHandler struct {
	jobs      db.MaintenanceCollection
	publisher events.Publisher
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(jobs db.MaintenanceCollection, publisher events.Publisher) *MaintenanceHandler {
	return &MaintenanceHandler{jobs: jobs, publisher: publisher}
}

// ListJobs returns all maintenance jobs.
func (h *MaintenanceHandler) ListJobs(c *gin.Context) {
	h.listFiltered(c, bson.M{})
}

// JobsByCustomer returns jobs for one customer.
func (h *MaintenanceHandler) JobsByCustomer(c *gin.Context) {
	h.listFiltered(c, bson.M{"customerId": c.Param("id")})
}

// JobsByMechanic returns jobs assigned to one mechanic.
func (h *MaintenanceHandler) JobsByMechanic(c *gin.Context) {
	h.listFiltered(c, bson.M{"assignedMechanic": c.Param("id")})
}

// JobsByStatus returns jobs with one status.
func (h *MaintenanceHandler) JobsByStatus(c *gin.Context) {
	h.listFiltered(c, bson.M{"status": c.Param("status")})
}

func (h *MaintenanceHandler) listFiltered(c *gin.Context, filter bson.M) {
	jobs, err := h.jobs.FindJobs(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list maintenance jobs"})
		return
	}
	if jobs == nil {
		jobs = []models.Maintenance{}
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob returns a single maintenance job by id.
func (h *MaintenanceHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.FindJobByID(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch maintenance job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob inserts a maintenance job. Status defaults to Pending.
func (h *MaintenanceHandler) CreateJob(c *gin.Context) {
	var job models.Maintenance
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if job.Status == "" {
		job.Status = models.MaintenancePending
	}
	job.ID = primitive.NewObjectID()
	job.CreatedAt = time.Now()
	job.CompletedAt = nil

	if err := h.jobs.InsertJob(c.Request.Context(), job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance job"})
		return
	}

	h.publisher.Publish(events.TopicMaintenance, events.Event{
		Action: "created",
		ID:     job.ID.Hex(),
		Status: job.Status,
	})
	c.JSON(http.StatusOK, job)
}

// UpdateJob overwrites the job's mutable fields. CompletedAt is stamped
// when the incoming status is Completed; no other transition touches it.
func (h *MaintenanceHandler) UpdateJob(c *gin.Context) {
	var req models.Maintenance
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	existing, err := h.jobs.FindJobByID(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch maintenance job"})
		return
	}

	existing.VehicleID = req.VehicleID
	existing.CustomerID = req.CustomerID
	existing.Issue = req.Issue
	existing.Priority = req.Priority
	existing.Status = req.Status
	existing.AssignedMechanic = req.AssignedMechanic
	existing.Deadline = req.Deadline
	if req.Status == models.MaintenanceCompleted {
		now := time.Now()
		existing.CompletedAt = &now
	}

	if err := h.jobs.UpdateJob(c.Request.Context(), c.Param("id"), *existing); err != nil {
		if err == db.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update maintenance job"})
		return
	}

	h.publisher.Publish(events.TopicMaintenance, events.Event{
		Action: "updated",
		ID:     existing.ID.Hex(),
		Status: existing.Status,
	})
	c.JSON(http.StatusOK, existing)
}

// DeleteJob removes a maintenance job by id.
func (h *MaintenanceHandler) DeleteJob(c *gin.Context) {
	err := h.jobs.DeleteJob(c.Request.Context(), c.Param("id"))
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete maintenance job"})
		return
	}

	h.publisher.Publish(events.TopicMaintenance, events.Event{
		Action: "deleted",
		ID:     c.Param("id"),
	})
	c.Status(http.StatusNoContent)
}
