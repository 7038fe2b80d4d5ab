// Package config provides configuration for the cleanup tool.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/taskhub/cleanup-go/logger"
)

// Config holds immutable configuration for a cleanup run. The defaults
// match the seeded E2E environment; every field can be overridden
// through the environment or CLI flags.
type Config struct {
	// BaseURL is the address of the TaskHub service.
	BaseURL string

	// Email and Password are the login credentials of the E2E test user.
	Email    string
	Password string

	// KeepProjectID is the id of the seeded baseline project that must
	// survive cleanup.
	KeepProjectID string

	// Trace enables span export to stdout for the run.
	Trace bool

	// Debug enables debug-level logging.
	Debug bool

	// Logger, if set, is used for all logging.
	Logger logger.Logger
}

// FromEnv loads configuration from environment variables with defaults.
//
// Supported environment variables:
//   - CLEANUP_BASE_URL: service address (default: "http://localhost:3002")
//   - CLEANUP_EMAIL: login email (default: "test@test.com")
//   - CLEANUP_PASSWORD: login password (default: "test")
//   - CLEANUP_KEEP_PROJECT_ID: baseline project id (default: "test-project-id")
//   - CLEANUP_TRACE: export spans to stdout (default: false)
//   - CLEANUP_DEBUG: debug logging (default: false)
func FromEnv() *Config {
	return &Config{
		BaseURL:       getEnvString("CLEANUP_BASE_URL", "http://localhost:3002"),
		Email:         getEnvString("CLEANUP_EMAIL", "test@test.com"),
		Password:      getEnvString("CLEANUP_PASSWORD", "test"),
		KeepProjectID: getEnvString("CLEANUP_KEEP_PROJECT_ID", "test-project-id"),
		Trace:         getEnvBool("CLEANUP_TRACE", false),
		Debug:         getEnvBool("CLEANUP_DEBUG", false),
	}
}

// getEnvString returns the trimmed environment variable value or the default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// getEnvBool returns the environment variable as a bool or the default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(strings.TrimSpace(value)) == "true"
	}
	return defaultValue
}

// IsValid checks if the configuration has all required fields.
// Returns an error if any required field is missing.
func (c *Config) IsValid() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if c.Email == "" {
		return fmt.Errorf("email is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	if c.KeepProjectID == "" {
		return fmt.Errorf("keep project id is required")
	}
	return nil
}
