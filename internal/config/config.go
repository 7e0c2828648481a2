package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	// Server
	ServerPort     int
	AllowedOrigins string

	// Processing
	BatchWorkers        int
	CacheTTLSeconds     int
	DefaultForecastDays int

	// Logging
	LogLevel      string
	LogDir        string
	LogFileMaxAge int // days
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:     getEnvInt("SERVER_PORT", 8080),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		BatchWorkers:        getEnvInt("BATCH_WORKERS", 8),
		CacheTTLSeconds:     getEnvInt("CACHE_TTL_SECONDS", 30),
		DefaultForecastDays: getEnvInt("DEFAULT_FORECAST_DAYS", 7),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogDir:        getEnv("LOG_DIRECTORY", "./logs"),
		LogFileMaxAge: getEnvInt("LOG_FILE_MAX_AGE", 2),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.ServerPort)
	}

	if c.BatchWorkers < 1 || c.BatchWorkers > 256 {
		return fmt.Errorf("invalid BATCH_WORKERS: %d (must be 1-256)", c.BatchWorkers)
	}

	if c.CacheTTLSeconds < 0 || c.CacheTTLSeconds > 3600 {
		return fmt.Errorf("invalid CACHE_TTL_SECONDS: %d (must be 0-3600)", c.CacheTTLSeconds)
	}

	if c.DefaultForecastDays < 1 || c.DefaultForecastDays > 30 {
		return fmt.Errorf("invalid DEFAULT_FORECAST_DAYS: %d (must be 1-30)", c.DefaultForecastDays)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
