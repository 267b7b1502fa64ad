// Package config loads service configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	Environment string
}

// Load reads configuration from the environment. An empty DatabaseURL puts
// the service into in-memory demo mode; an empty RedisURL disables the
// idempotency cache.
func Load() *Config {
	// Best effort; production deployments set real env vars.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
