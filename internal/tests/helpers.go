// Package tests provides helpers for integration tests that talk to a
// live TaskHub service.
package tests

import (
	"context"
	"os"
	"testing"

	"github.com/taskhub/cleanup-go/internal/auth"
	"github.com/taskhub/cleanup-go/internal/https"
	intlogger "github.com/taskhub/cleanup-go/internal/logger"
)

// BaseURL returns the service address for integration tests, skipping
// the test unless CLEANUP_E2E=1 is set. The default go test run needs
// no live service.
func BaseURL(t *testing.T) string {
	t.Helper()

	if os.Getenv("CLEANUP_E2E") != "1" {
		t.Skip("Skipping integration test; set CLEANUP_E2E=1 to run against a live service")
	}

	baseURL := os.Getenv("CLEANUP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3002"
	}
	return baseURL
}

// Credentials returns the login credentials for integration tests from
// the environment, with the seeded defaults.
func Credentials(t *testing.T) auth.Credentials {
	t.Helper()

	creds := auth.Credentials{
		Email:    os.Getenv("CLEANUP_EMAIL"),
		Password: os.Getenv("CLEANUP_PASSWORD"),
	}
	if creds.Email == "" {
		creds.Email = "test@test.com"
	}
	if creds.Password == "" {
		creds.Password = "test"
	}
	return creds
}

// GetTestClient logs into the live service and returns an authenticated
// HTTP client. Uses the fail logger to report errors immediately.
func GetTestClient(t *testing.T) *https.Client {
	t.Helper()

	baseURL := BaseURL(t)
	log := intlogger.NewFailTestLogger(t)

	loginClient := https.NewClient("", baseURL, log)
	session, err := auth.Login(context.Background(), loginClient, Credentials(t))
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	return loginClient.WithToken(session.Token())
}
