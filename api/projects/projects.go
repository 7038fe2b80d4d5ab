package projects

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taskhub/cleanup-go/internal/https"
)

// API provides operations for managing TaskHub projects.
type API struct {
	client *https.Client
}

// New creates a new projects API client.
func New(client *https.Client) *API {
	return &API{client: client}
}

// List retrieves all projects visible to the authenticated caller.
// The service returns a bare JSON array; unknown fields are ignored.
//
// Example:
//
//	projects, err := client.Projects().List(ctx)
func (a *API) List(ctx context.Context) ([]Project, error) {
	resp, err := a.client.GET(ctx, "/projects", nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var result []Project
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return result, nil
}

// Delete deletes a project by ID.
//
// Example:
//
//	err := client.Projects().Delete(ctx, "proj_123")
func (a *API) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("project ID is required")
	}

	path := fmt.Sprintf("/projects/%s", id)
	resp, err := a.client.DELETE(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return nil
}
