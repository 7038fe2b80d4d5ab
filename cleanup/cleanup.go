// Package cleanup deletes leftover test-created projects from a TaskHub
// service after E2E runs, preserving the seeded baseline project.
package cleanup

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/taskhub/cleanup-go/api/projects"
	"github.com/taskhub/cleanup-go/logger"
)

const tracerName = "github.com/taskhub/cleanup-go/cleanup"

// Outcome is the result of one deletion attempt. A nil Err means the
// project was deleted.
type Outcome struct {
	Project projects.Project
	Err     error
}

// Deleted reports whether the attempt succeeded.
func (o Outcome) Deleted() bool {
	return o.Err == nil
}

// Filter returns the projects whose id differs from keepID, preserving
// input order. It never mutates the input.
func Filter(list []projects.Project, keepID string) []projects.Project {
	kept := make([]projects.Project, 0, len(list))
	for _, p := range list {
		if p.ID == keepID {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// Runner performs one cleanup pass: list, filter, delete each target
// sequentially. Listing errors abort the run; deletion errors are
// recorded per item and never stop the loop.
type Runner struct {
	// Projects is the authenticated projects API.
	Projects *projects.API

	// KeepID is the id of the baseline project that must survive.
	KeepID string

	// Out receives progress lines. Defaults to io.Discard when nil.
	Out io.Writer

	// Logger, if set, receives debug/warn records.
	Logger logger.Logger

	// Tracer, if set, overrides the global tracer.
	Tracer trace.Tracer
}

// Run executes the cleanup pass. The returned outcomes hold one entry
// per deletion target, in listing order. A non-nil error means the run
// aborted before any deletion was attempted.
func (r *Runner) Run(ctx context.Context) ([]Outcome, error) {
	out := r.Out
	if out == nil {
		out = io.Discard
	}
	log := r.Logger
	if log == nil {
		log = logger.Discard()
	}
	tracer := r.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	ctx, span := tracer.Start(ctx, "cleanup.run")
	defer span.End()

	list, err := r.Projects.List(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "listing failed")
		span.RecordError(err)
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	targets := Filter(list, r.KeepID)
	span.SetAttributes(
		attribute.Int("cleanup.listed", len(list)),
		attribute.Int("cleanup.targets", len(targets)),
	)

	fmt.Fprintf(out, "Found %d non-seeded projects to clean up\n", len(targets))

	outcomes := make([]Outcome, 0, len(targets))
	for _, p := range targets {
		err := r.deleteOne(ctx, tracer, p)
		outcomes = append(outcomes, Outcome{Project: p, Err: err})

		if err != nil {
			fmt.Fprintf(out, "  Failed to delete %s: %v\n", p.Name, err)
			log.Warn("delete failed", "project_id", p.ID, "project_name", p.Name, "error", err)
			continue
		}
		fmt.Fprintf(out, "  Deleted: %s (%s)\n", p.Name, p.ID)
		log.Debug("deleted project", "project_id", p.ID, "project_name", p.Name)
	}

	fmt.Fprintln(out, "Cleanup complete")
	return outcomes, nil
}

func (r *Runner) deleteOne(ctx context.Context, tracer trace.Tracer, p projects.Project) error {
	ctx, span := tracer.Start(ctx, "cleanup.delete",
		trace.WithAttributes(
			attribute.String("project.id", p.ID),
			attribute.String("project.name", p.Name),
		))
	defer span.End()

	if err := r.Projects.Delete(ctx, p.ID); err != nil {
		span.SetStatus(codes.Error, "delete failed")
		span.RecordError(err)
		return err
	}
	return nil
}
