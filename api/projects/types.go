// Package projects provides operations on TaskHub projects.
package projects

// Project represents a project in TaskHub.
type Project struct {
	// ID is the unique identifier for the project.
	ID string `json:"id"`

	// Name is the human-readable name of the project.
	Name string `json:"name"`
}
