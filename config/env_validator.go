package config

import (
	"fmt"
	"os"

	marketplace "go-marketplace-core"
)

// EnvValidator handles validation of required environment variables
type EnvValidator struct{}

// NewEnvValidator creates a new environment validator instance
func NewEnvValidator() *EnvValidator {
	return &EnvValidator{}
}

// ValidateRequired validates that all required environment variables are present
// Returns an error if any required variables are missing
func (e *EnvValidator) ValidateRequired() error {
	requiredVars := []string{"MARKETPLACE_BASE_URL"}

	var missingVars []string
	for _, varName := range requiredVars {
		if value := os.Getenv(varName); value == "" {
			missingVars = append(missingVars, varName)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v. Please set these variables in your .env file or environment", missingVars)
	}

	// Validate the base URL is well-formed
	if _, err := e.GetBaseURL(); err != nil {
		return fmt.Errorf("invalid MARKETPLACE_BASE_URL: %w", err)
	}

	return nil
}

// GetBaseURL returns the marketplace base URL from environment variables
// Returns an error if the URL is missing or not a valid http(s) URL
func (e *EnvValidator) GetBaseURL() (string, error) {
	baseURL := os.Getenv("MARKETPLACE_BASE_URL")

	if baseURL == "" {
		return "", fmt.Errorf("MARKETPLACE_BASE_URL environment variable is not set")
	}

	if !marketplace.ValidateURL(baseURL) {
		return "", fmt.Errorf("MARKETPLACE_BASE_URL must be a valid http(s) URL, got: %s", baseURL)
	}

	return baseURL, nil
}

// GetOutputDir returns the configured output directory, or the provided
// fallback when unset
func (e *EnvValidator) GetOutputDir(fallback string) string {
	if dir := os.Getenv("MARKETPLACE_OUTPUT_DIR"); dir != "" {
		return dir
	}
	return fallback
}
