package main

import (
	"context"

	"github.com/ShounakShelke/carcircle-backend/internal/auth"
	"github.com/ShounakShelke/carcircle-backend/internal/config"
	"github.com/ShounakShelke/carcircle-backend/internal/db"
	"github.com/ShounakShelke/carcircle-backend/internal/events"
	"github.com/ShounakShelke/carcircle-backend/internal/handlers"
	"github.com/ShounakShelke/carcircle-backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system environment variables")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	log.WithField("db", cfg.MongoDB).Info("connected to MongoDB")

	collections := db.NewCollections(client.Database(cfg.MongoDB))
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.MQTTBrokerURL != "" {
		mqttPublisher, err := events.NewMQTTPublisher(cfg.MQTTBrokerURL)
		if err != nil {
			log.WithError(err).Warn("MQTT broker unreachable, fleet events disabled")
		} else {
			defer mqttPublisher.Disconnect()
			publisher = mqttPublisher
			log.WithField("broker", cfg.MQTTBrokerURL).Info("fleet event publishing enabled")
		}
	}

	r := router.New(router.Handlers{
		Auth:        handlers.NewAuthHandler(authService, collections.Users),
		Profile:     handlers.NewProfileHandler(collections.Users),
		Cars:        handlers.NewCarHandler(collections.Cars),
		Bookings:    handlers.NewBookingHandler(collections.Bookings, publisher),
		Maintenance: handlers.NewMaintenanceHandler(collections.Maintenance, publisher),
		Messages:    handlers.NewMessageHandler(collections.Messages),
		Dashboard:   handlers.NewDashboardHandler(),
		LLM:         handlers.NewLLMHandler(cfg.AnthropicAPIKey),
	}, authService, cfg.CORSOrigins)

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
