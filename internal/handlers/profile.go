package handlers

import (
	"net/http"

	"github.com/ShounakShelke/carcircle-backend/internal/db"
	"github.com/ShounakShelke/carcircle-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the authenticated user's own record. Identity
// comes from the JWT claims on the request context, so two concurrent
// sessions never observe each other.
type ProfileHandler struct {
	users db.UserCollection
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(users db.UserCollection) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// GetProfile returns the caller's user record.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User context not found"})
		return
	}

	user, err := h.users.FindUserByID(c.Request.Context(), claims.UserID)
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the caller's username and email.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User context not found"})
		return
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	user, err := h.users.FindUserByID(c.Request.Context(), claims.UserID)
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" && req.Email != user.Email {
		if existing, err := h.users.FindUserByEmail(c.Request.Context(), req.Email); err == nil && existing.ID != user.ID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		user.Email = req.Email
	}

	if err := h.users.UpdateUser(c.Request.Context(), claims.UserID, *user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}
