package middleware

import (
	"net/http"

	"github.com/ShounakShelke/carcircle-backend/internal/auth"
	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key under which the authenticated
// identity is stored.
const ClaimsKey = "claims"

// Authenticate validates the Authorization header and threads the JWT
// claims through the request context. This replaces any notion of a
// process-wide "current user": identity is always per request.
func Authenticate(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := authService.ValidateToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims extracts the authenticated identity from the gin context.
func GetClaims(c *gin.Context) (*models.Claims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.Claims)
	return claims, ok
}
