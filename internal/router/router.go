package router

import (
	"github.com/ShounakShelke/carcircle-backend/internal/auth"
	"github.com/ShounakShelke/carcircle-backend/internal/handlers"
	"github.com/ShounakShelke/carcircle-backend/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Profile     *handlers.ProfileHandler
	Cars        *handlers.CarHandler
	Bookings    *handlers.BookingHandler
	Maintenance *handlers.MaintenanceHandler
	Messages    *handlers.MessageHandler
	Dashboard   *handlers.DashboardHandler
	LLM         *handlers.LLMHandler
}

// New builds the gin engine with all routes mounted under /api.
func New(h Handlers, authService *auth.Service, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = corsOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/users", h.Auth.ListUsers)
		authGroup.POST("/users", h.Auth.CreateUser)
		authGroup.GET("/users/:id", h.Auth.GetUser)
		authGroup.PUT("/users/:id", h.Auth.UpdateUser)
		authGroup.DELETE("/users/:id", h.Auth.DeleteUser)
	}

	user := api.Group("/user")
	user.Use(middleware.Authenticate(authService))
	{
		user.GET("/profile", h.Profile.GetProfile)
		user.PUT("/profile", h.Profile.UpdateProfile)
	}

	// /cars and /vehicles are aliases over the same collection.
	registerCarRoutes(api.Group("/cars"), h.Cars)
	registerCarRoutes(api.Group("/vehicles"), h.Cars)

	bookings := api.Group("/bookings")
	{
		bookings.GET("", h.Bookings.ListBookings)
		bookings.POST("", h.Bookings.CreateBooking)
		bookings.GET("/:id", h.Bookings.GetBooking)
		bookings.PUT("/:id", h.Bookings.UpdateBooking)
		bookings.DELETE("/:id", h.Bookings.DeleteBooking)
	}

	maintenance := api.Group("/maintenance")
	{
		maintenance.GET("", h.Maintenance.ListJobs)
		maintenance.POST("", h.Maintenance.CreateJob)
		maintenance.GET("/:id", h.Maintenance.GetJob)
		maintenance.PUT("/:id", h.Maintenance.UpdateJob)
		maintenance.DELETE("/:id", h.Maintenance.DeleteJob)
		maintenance.GET("/customer/:id", h.Maintenance.JobsByCustomer)
		maintenance.GET("/mechanic/:id", h.Maintenance.JobsByMechanic)
		maintenance.GET("/status/:status", h.Maintenance.JobsByStatus)
	}

	messages := api.Group("/messages")
	{
		messages.GET("", h.Messages.ListMessages)
		messages.POST("", h.Messages.SendMessage)
		messages.GET("/conversation", h.Messages.Conversation)
		messages.GET("/sender/:id", h.Messages.MessagesBySender)
		messages.GET("/receiver/:id", h.Messages.MessagesByReceiver)
		messages.GET("/:id", h.Messages.GetMessage)
		messages.PUT("/:id/read", h.Messages.MarkRead)
		messages.DELETE("/:id", h.Messages.DeleteMessage)
	}

	api.GET("/dashboard/:role", h.Dashboard.GetDashboard)
	api.POST("/llm/claude", h.LLM.Complete)

	return r
}

func registerCarRoutes(g *gin.RouterGroup, h *handlers.CarHandler) {
	g.GET("", h.ListCars)
	g.POST("", h.CreateCar)
	g.GET("/:id", h.GetCar)
	g.PUT("/:id", h.UpdateCar)
	g.DELETE("/:id", h.DeleteCar)
}
