// Package auth handles credential login against the TaskHub service.
package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taskhub/cleanup-go/internal/https"
)

// Credentials are the fixed login credentials for the service.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session holds the bearer token obtained from a successful login.
// The token lives for the duration of the process; there is no refresh.
type Session struct {
	token string
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token via POST /auth/login.
// The client must be unauthenticated (no token). Login is synchronous
// and does not retry: any transport error, non-2xx status, malformed
// body, or missing token field is returned to the caller, which is
// expected to treat it as fatal.
func Login(ctx context.Context, client *https.Client, creds Credentials) (*Session, error) {
	if creds.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if creds.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	resp, err := client.POST(ctx, "/auth/login", creds)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding login response: %w", err)
	}

	if result.Token == "" {
		return nil, fmt.Errorf("login response missing token")
	}

	return &Session{token: result.Token}, nil
}

// Token returns the bearer token for authenticated requests.
func (s *Session) Token() string {
	return s.token
}

// NewTestSession creates a static session with a fixed token. This is
// for use in test packages outside of internal/auth; it makes no
// network calls.
func NewTestSession(token string) *Session {
	return &Session{token: token}
}
