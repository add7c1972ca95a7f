package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the per-role dashboard payloads. These are a
// fixed lookup table keyed by role; nothing here touches the database.
type DashboardHandler struct{}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

var dashboards = map[string]gin.H{
	"admin": {
		"stats": []gin.H{
			{"label": "Total Users", "value": 2847, "trend": "+12% this month"},
			{"label": "Active Rentals", "value": 156, "trend": "85% capacity"},
			{"label": "System Health", "value": "99.9%", "trend": "All systems operational"},
			{"label": "Open Tickets", "value": 23, "trend": "3 high priority"},
		},
		"alerts": []gin.H{
			{"type": "warning", "title": "High API Usage", "description": "Payment gateway approaching rate limit", "time": "5 min ago"},
			{"type": "info", "title": "System Backup Completed", "description": "Daily backup completed successfully", "time": "2 hours ago"},
		},
	},
	"manager": {
		"stats": []gin.H{
			{"label": "Total Fleet", "value": 24, "trend": "+2 this month"},
			{"label": "Active Rentals", "value": 18, "trend": "75% utilization"},
			{"label": "Monthly Revenue", "value": "₹1,85,000", "trend": "+12% vs last month"},
			{"label": "Average Rating", "value": "4.8", "trend": "96% satisfaction"},
		},
		"recentBookings": []gin.H{
			{"id": 1, "customer": "Shounak Shelke", "car": "Honda City", "duration": "3 days", "amount": "₹4,500", "status": "Confirmed"},
			{"id": 2, "customer": "Sahil Kanchan", "car": "BMW X1", "duration": "1 week", "amount": "₹12,600", "status": "In Progress"},
			{"id": 3, "customer": "Shivam Bhosle", "car": "Maruti Swift", "duration": "2 days", "amount": "₹2,400", "status": "Completed"},
		},
	},
	"mechanic": {
		"stats": []gin.H{
			{"label": "Assigned Vehicles", "value": 12},
			{"label": "Pending Jobs", "value": 5},
			{"label": "Completed Today", "value": 3},
			{"label": "Urgent Alerts", "value": 2},
		},
		"urgentJobs": []gin.H{
			{"id": 1, "vehicle": "BMW X3 - MH01AB1234", "issue": "Brake pad replacement", "priority": "High", "assignedDate": "2024-01-15", "deadline": "2024-01-16"},
			{"id": 2, "vehicle": "Honda City - MH02CD5678", "issue": "Oil change & filter replacement", "priority": "Medium", "assignedDate": "2024-01-14", "deadline": "2024-01-17"},
		},
	},
	"customer": {
		"stats": []gin.H{
			{"label": "Active Rentals", "value": 2},
			{"label": "Completed Trips", "value": 15},
			{"label": "Loyalty Points", "value": 1250},
		},
		"activeRentals": []gin.H{
			{"id": 1, "car": "BMW X3", "pickup": "2024-01-15", "return": "2024-01-18", "status": "Active", "location": "Mumbai Central"},
			{"id": 2, "car": "Honda City", "pickup": "2024-01-20", "return": "2024-01-22", "status": "Upcoming", "location": "Pune Airport"},
		},
	},
}

// GetDashboard returns the payload for the requested role. Unknown
// roles get a placeholder, never an error.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	role := strings.ToLower(c.Param("role"))
	if payload, ok := dashboards[role]; ok {
		c.JSON(http.StatusOK, payload)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "No dashboard data for this role"})
}
