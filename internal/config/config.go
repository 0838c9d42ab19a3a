// Package config loads configuration from environment variables, with a
// local .env file honored for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// DBPath is where the SQLite database lives.
	DBPath string

	// Port the HTTP server listens on.
	Port string

	// LogLevel is debug, info, warn, or error.
	LogLevel string

	// StoreOpenRetries is the store open retry budget.
	StoreOpenRetries int

	// StoreRetryBackoff is the linear backoff base between open attempts.
	StoreRetryBackoff time.Duration

	// SuggestBaseURL is the location-suggestion endpoint; empty disables
	// the feature.
	SuggestBaseURL string
}

// Load loads configuration from the environment. A missing .env file is
// fine; values present in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:            getEnvOrDefault("DB_PATH", "./data/packmule.db"),
		Port:              getEnvOrDefault("PORT", "8080"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		SuggestBaseURL:    os.Getenv("SUGGEST_BASE_URL"),
		StoreOpenRetries:  3,
		StoreRetryBackoff: 150 * time.Millisecond,
	}

	if v := os.Getenv("STORE_OPEN_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("STORE_OPEN_RETRIES must be a positive integer, got %q", v)
		}
		cfg.StoreOpenRetries = n
	}

	if v := os.Getenv("STORE_RETRY_BACKOFF_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("STORE_RETRY_BACKOFF_MS must be a non-negative integer, got %q", v)
		}
		cfg.StoreRetryBackoff = time.Duration(n) * time.Millisecond
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
