package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardRouter() *gin.Engine {
	h := NewDashboardHandler()
	r := gin.New()
	r.GET("/api/dashboard/:role", h.GetDashboard)
	return r
}

func TestGetDashboard_KnownRoles(t *testing.T) {
	r := dashboardRouter()

	tests := []struct {
		role string
		key  string
	}{
		{"admin", "alerts"},
		{"manager", "recentBookings"},
		{"mechanic", "urgentJobs"},
		{"customer", "activeRentals"},
	}

	for _, tt := range tests {
		w := performRequest(r, http.MethodGet, "/api/dashboard/"+tt.role, nil)
		require.Equal(t, http.StatusOK, w.Code, tt.role)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.Contains(t, payload, "stats", tt.role)
		assert.Contains(t, payload, tt.key, tt.role)
	}
}

func TestGetDashboard_RoleIsCaseInsensitive(t *testing.T) {
	r := dashboardRouter()

	w := performRequest(r, http.MethodGet, "/api/dashboard/Admin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Contains(t, payload, "stats")
}

func TestGetDashboard_UnknownRolePlaceholder(t *testing.T) {
	r := dashboardRouter()

	w := performRequest(r, http.MethodGet, "/api/dashboard/astronaut", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "No dashboard data for this role"}`, w.Body.String())
}
