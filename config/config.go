package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// DatabaseURL takes precedence over the individual DB fields when set.
	DatabaseURL string
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to development defaults. A .env file in the working directory
// is loaded first when present; deployments pass real environment variables.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerHost:  getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DBHost:      getEnv("POSTGRES_HOST", "localhost"),
		DBPort:      getEnv("POSTGRES_PORT", "5001"),
		DBUser:      getEnv("POSTGRES_USER", "appuser"),
		DBPassword:  getEnv("POSTGRES_PASSWORD", "dbuser123"),
		DBName:      getEnv("POSTGRES_DB", "myapp"),
		DBSSLMode:   getEnv("POSTGRES_SSL_MODE", "disable"),
		DatabaseURL: os.Getenv("POSTGRES_URL"),
	}

	return cfg, nil
}

// DatabaseDSN returns the connection string for the store. The full
// POSTGRES_URL wins over the individual parameters so platform-injected URLs
// work without any other variables set.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// ServerAddr returns the host:port the HTTP server binds to.
func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%s", c.ServerHost, c.ServerPort)
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
