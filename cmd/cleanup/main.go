// Command cleanup deletes leftover test-created projects from a running
// TaskHub service after E2E suites execute, preserving the seeded
// baseline project.
//
// To run against the default local environment:
//
//	go run ./cmd/cleanup
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/taskhub/cleanup-go/api"
	"github.com/taskhub/cleanup-go/cleanup"
	"github.com/taskhub/cleanup-go/config"
	"github.com/taskhub/cleanup-go/internal/auth"
	"github.com/taskhub/cleanup-go/internal/https"
	"github.com/taskhub/cleanup-go/logger"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete leftover E2E test projects, keeping the seeded baseline",
		Long: `cleanup logs into a TaskHub service, lists all projects, and deletes
every project except the seeded baseline. Individual deletion failures
are logged and skipped; login or listing failures abort the run.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the TaskHub service")
	flags.StringVar(&cfg.Email, "email", cfg.Email, "login email of the E2E test user")
	flags.StringVar(&cfg.Password, "password", cfg.Password, "login password of the E2E test user")
	flags.StringVar(&cfg.KeepProjectID, "keep", cfg.KeepProjectID, "id of the baseline project to preserve")
	flags.BoolVar(&cfg.Trace, "trace", cfg.Trace, "export spans to stderr")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.IsValid(); err != nil {
		return err
	}

	ctx := cmd.Context()

	log := cfg.Logger
	if log == nil {
		level := slog.LevelWarn
		if cfg.Debug {
			level = slog.LevelDebug
		}
		log = logger.New(cmd.ErrOrStderr(), level)
	}

	var tracer trace.Tracer
	if cfg.Trace {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()))
		if err != nil {
			return fmt.Errorf("creating trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer func() { _ = tp.Shutdown(context.Background()) }()
		tracer = tp.Tracer("cleanup")
	}

	// Login is the fatal tier: no retry, no fallback.
	loginClient := https.NewClient("", cfg.BaseURL, log)
	session, err := auth.Login(ctx, loginClient, auth.Credentials{
		Email:    cfg.Email,
		Password: cfg.Password,
	})
	if err != nil {
		return err
	}

	client := api.NewClient(session.Token(),
		api.WithBaseURL(cfg.BaseURL),
		api.WithLogger(log),
	)

	runner := &cleanup.Runner{
		Projects: client.Projects(),
		KeepID:   cfg.KeepProjectID,
		Out:      cmd.OutOrStdout(),
		Logger:   log,
		Tracer:   tracer,
	}

	_, err = runner.Run(ctx)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(config.FromEnv())
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
