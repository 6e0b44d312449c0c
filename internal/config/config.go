package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Env          string
	LogLevel     string
	HospitalName string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		HospitalName: getEnv("HOSPITAL_NAME", "St. Brendan General Hospital"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
