// Package main is the entry point for Torchcrawl.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/samdwyer/torchcrawl/internal/config"
	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
	"github.com/samdwyer/torchcrawl/internal/logging"
	"github.com/samdwyer/torchcrawl/internal/telemetry"
)

// setupTelemetry is replaced in tests.
var setupTelemetry = telemetry.Setup

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute runs the game and returns the process exit code. Deferred
// cleanup, including the trace flush, runs before it returns.
func execute(args []string, stderr io.Writer) int {
	// Load .env file for local development
	envErr := godotenv.Load()

	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "torchcrawl: %v\n", err)
		return 2
	}

	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "torchcrawl: %v\n", err)
		return 1
	}
	defer closeLog()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := setupTelemetry(ctx, cfg.Telemetry.Enabled)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without traces")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("game error")
		fmt.Fprintf(stderr, "torchcrawl: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	src := gamedata.Embedded()
	if cfg.Data.Dir != "" {
		src = gamedata.FromFS(os.DirFS(cfg.Data.Dir))
		log.WithField("dir", cfg.Data.Dir).Info("using data directory")
	}

	objects, err := src.LoadObjectRegistry()
	if err != nil {
		return fmt.Errorf("loading objects: %w", err)
	}
	colors, err := src.LoadColors()
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	g, err := game.New(game.ConfigFrom(cfg), objects, colors, log)
	if err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	return g.Run(ctx)
}

// setupOTelEnv fills in the OTLP headers from TORCHCRAWL_OTLP_API_KEY when
// the standard variable is not already set.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") != "" {
		return
	}
	apiKey := os.Getenv("TORCHCRAWL_OTLP_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("TORCHCRAWL_OTLP_DATASET")
	if dataset == "" {
		dataset = "torchcrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
