// Package https provides a unified HTTP client for talking to the
// TaskHub service with centralized auth, error handling, and debug
// logging.
package https

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/taskhub/cleanup-go/logger"
)

// HTTPError represents an HTTP error response with status code.
type HTTPError struct {
	StatusCode int
	Body       string
	err        error
}

func (e *HTTPError) Error() string {
	return e.err.Error()
}

func (e *HTTPError) Unwrap() error {
	return e.err
}

// Client is a unified HTTP client for service requests.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a client for the service at baseURL. The token may
// be empty, in which case requests go out without an Authorization
// header (the login call works this way).
func NewClient(token, baseURL string, log logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}

	return &Client{
		token:   token,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log,
	}
}

// NewWrappedClient creates a client with a custom http.Client. This is
// useful for tests that need to wrap the transport (e.g. with VCR).
func NewWrappedClient(token, baseURL string, httpClient *http.Client, log logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}

	return &Client{
		token:      token,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log,
	}
}

// WithToken returns a copy of the client that authenticates with the
// given bearer token. The underlying http.Client is shared.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// GET makes a GET request with optional query parameters.
func (c *Client) GET(ctx context.Context, path string, params map[string]string) (*http.Response, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("failed to join URL: %w", err)
	}

	if len(params) > 0 {
		urlValues := url.Values{}
		for k, v := range params {
			urlValues.Add(k, v)
		}
		u = u + "?" + urlValues.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.doRequest(req)
}

// POST makes a POST request with a JSON body.
func (c *Client) POST(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("failed to join URL: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshaling request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.doRequest(req)
}

// DELETE makes a DELETE request.
func (c *Client) DELETE(ctx context.Context, path string) (*http.Response, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("failed to join URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "DELETE", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.doRequest(req)
}

// Client returns the underlying http.Client.
func (c *Client) Client() *http.Client {
	return c.httpClient
}

// doRequest executes the HTTP request with auth, error checking, and logging.
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	c.logger.Debug("http request",
		"method", req.Method,
		"url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("http request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
			"duration", time.Since(start))
		return nil, fmt.Errorf("error making request: %w", err)
	}

	c.logger.Debug("http response",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			err:        fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body)),
		}
	}

	return resp, nil
}
