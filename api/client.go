// Package api provides a client for the TaskHub HTTP API.
package api

import (
	"github.com/taskhub/cleanup-go/api/projects"
	"github.com/taskhub/cleanup-go/internal/https"
	"github.com/taskhub/cleanup-go/logger"
)

// API is the main API client for the TaskHub service.
type API struct {
	client *https.Client
}

// Option configures an API client.
type Option func(*options)

// options holds configuration for creating an API client.
type options struct {
	baseURL string
	logger  logger.Logger
}

// WithBaseURL sets the service address for the client.
// If not provided, defaults to "http://localhost:3002".
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithLogger sets a custom logger for the client.
// If not provided, no logging will occur.
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// NewClient creates a new API client with the given session token and
// options. The token comes from a prior login.
func NewClient(token string, opts ...Option) *API {
	options := &options{
		baseURL: "http://localhost:3002", // default
		logger:  nil,
	}

	for _, opt := range opts {
		opt(options)
	}

	client := https.NewClient(token, options.baseURL, options.logger)

	return &API{
		client: client,
	}
}

// NewWithClient creates an API around an existing HTTP client. Used by
// tests that wrap the transport.
func NewWithClient(client *https.Client) *API {
	return &API{client: client}
}

// Projects returns a client for project operations
func (a *API) Projects() *projects.API {
	return projects.New(a.client)
}
