// Package config loads environment-driven configuration for concrete
// marketplace clients.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	marketplace "go-marketplace-core"
	"go-marketplace-core/auth"
)

// ClientConfig holds the configuration values a concrete marketplace
// client is constructed with
type ClientConfig struct {
	BaseURL   string // Base URL of the marketplace API
	OutputDir string // Directory downloads are written to
	LogLevel  string // Logging level (DEBUG, INFO, WARN, ERROR)
}

// LoadConfig loads and validates the client configuration from environment
// variables. Returns a ClientConfig struct or an error if validation fails
func LoadConfig() (*ClientConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	validator := NewEnvValidator()

	if err := validator.ValidateRequired(); err != nil {
		return nil, fmt.Errorf("environment validation failed: %w", err)
	}

	baseURL, err := validator.GetBaseURL()
	if err != nil {
		return nil, fmt.Errorf("failed to get base URL: %w", err)
	}

	outputDir := os.Getenv("MARKETPLACE_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "downloads" // Default download directory
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO" // Default log level
	}

	cfg := &ClientConfig{
		BaseURL:   baseURL,
		OutputDir: outputDir,
		LogLevel:  logLevel,
	}

	return cfg, nil
}

// Validate performs additional validation on the loaded configuration
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	if !marketplace.ValidateURL(c.BaseURL) {
		return fmt.Errorf("base URL must be a valid http(s) URL, got: %s", c.BaseURL)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// Endpoints returns the endpoint configuration for auth providers built on
// this config
func (c *ClientConfig) Endpoints() auth.EndpointConfig {
	return auth.EndpointConfig{BaseURL: c.BaseURL}
}
