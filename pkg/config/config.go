// Package config loads trackfire configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Database
	SQLitePath string

	// Media
	MediaDir string

	// Seeding
	SeedEnabled bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      getEnv("TRACKFIRE_ENV", "development"),
		LogLevel:    getEnv("TRACKFIRE_LOG_LEVEL", "info"),
		SQLitePath:  getEnv("TRACKFIRE_DB_PATH", defaultPath("trackfire.db")),
		MediaDir:    getEnv("TRACKFIRE_MEDIA_DIR", defaultPath("media")),
		SeedEnabled: getBoolEnv("TRACKFIRE_SEED", true),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".trackfire", name)
	}
	return filepath.Join(home, ".trackfire", name)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
