package config

import (
	"os"
	"time"
)

// Config holds all runtime configuration, populated from environment
// variables with sensible development defaults.
type Config struct {
	Port            string
	GinMode         string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	JWTExpiry       time.Duration
	AnthropicAPIKey string
	MQTTBrokerURL   string
	CORSOrigins     []string
}

// Load reads configuration from the process environment.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "carcircle"),
		JWTSecret:       getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		JWTExpiry:       getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		MQTTBrokerURL:   os.Getenv("MQTT_BROKER_URL"),
		CORSOrigins:     []string{getEnv("CORS_ORIGINS", "*")},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
