package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/cleanup-go/internal/https"
	intlogger "github.com/taskhub/cleanup-go/internal/logger"
	"github.com/taskhub/cleanup-go/logger"
)

var testCreds = Credentials{Email: "test@test.com", Password: "test"}

// TestLogin_Success tests a successful credential exchange.
func TestLogin_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify the request
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		_, present := r.Header["Authorization"]
		assert.False(t, present, "login must be unauthenticated")

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "test@test.com", creds.Email)
		assert.Equal(t, "test", creds.Password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token": "session-token-123"}`))
	}))
	defer server.Close()

	client := https.NewClient("", server.URL, intlogger.NewFailTestLogger(t))

	session, err := Login(context.Background(), client, testCreds)

	require.NoError(t, err)
	assert.Equal(t, "session-token-123", session.Token())
}

// TestLogin_InvalidCredentials tests login against a server that rejects
// the credentials.
func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer server.Close()

	// Use discard logger since we expect login to fail
	client := https.NewClient("", server.URL, logger.Discard())

	_, err := Login(context.Background(), client, testCreds)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")

	var httpErr *https.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

// TestLogin_MalformedResponse tests login when the server returns a body
// that is not JSON.
func TestLogin_MalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := https.NewClient("", server.URL, logger.Discard())

	_, err := Login(context.Background(), client, testCreds)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding login response")
}

// TestLogin_MissingToken tests login when the response JSON lacks the
// token field.
func TestLogin_MissingToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user": "test@test.com"}`))
	}))
	defer server.Close()

	client := https.NewClient("", server.URL, logger.Discard())

	_, err := Login(context.Background(), client, testCreds)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing token")
}

// TestLogin_ServiceUnreachable tests login when the service is down.
func TestLogin_ServiceUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := https.NewClient("", server.URL, logger.Discard())

	_, err := Login(context.Background(), client, testCreds)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestLogin_Validation(t *testing.T) {
	t.Parallel()

	client := https.NewClient("", "http://localhost:0", logger.Discard())

	_, err := Login(context.Background(), client, Credentials{Password: "test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")

	_, err = Login(context.Background(), client, Credentials{Email: "test@test.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestNewTestSession(t *testing.T) {
	t.Parallel()

	session := NewTestSession("fixed-token")
	assert.Equal(t, "fixed-token", session.Token())
}
