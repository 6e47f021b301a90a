package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/QamerHassan/Smart-Meeting/internal/config"
	"github.com/QamerHassan/Smart-Meeting/internal/extract"
	httpserver "github.com/QamerHassan/Smart-Meeting/internal/http"
	"github.com/QamerHassan/Smart-Meeting/internal/logging"
	"github.com/QamerHassan/Smart-Meeting/internal/nlp"
	"github.com/QamerHassan/Smart-Meeting/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the meetingd HTTP daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return runServe(ctx)
	},
}

// runServe starts the daemon and blocks until the context is cancelled.
//
// Startup order:
//  1. Load and validate configuration
//  2. Initialize logger and telemetry
//  3. Load the linguistic models (fatal on failure)
//  4. Wire the extraction engine and HTTP server
//  5. Serve until signalled, then shut down gracefully
func runServe(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync() // Best-effort sync on shutdown
	}()

	logger.Info("starting meetingd",
		zap.String("version", version),
		zap.Int("port", cfg.Server.Port),
		zap.Duration("shutdown_timeout", cfg.Server.ShutdownTimeout.Duration()))

	tel, err := telemetry.New(ctx, telemetryConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		_ = tel.Shutdown(context.Background())
	}()
	if tel.Degraded() {
		logger.Warn("telemetry degraded, continuing without full instrumentation")
	}

	// Load linguistic models. This is the only blocking I/O in the
	// process; a failure here must prevent serving entirely.
	pipeline, err := nlp.NewProsePipeline()
	if err != nil {
		return fmt.Errorf("loading nlp pipeline: %w", err)
	}
	logger.Info("nlp pipeline ready")

	extractor, err := extract.NewExtractor(pipeline, cfg.Extraction, logger)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	srv, err := httpserver.NewServer(extractor, logger, &httpserver.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		CORSOrigins:    cfg.Server.CORSOrigins,
		MinNotesLength: cfg.Server.MinNotesLength,
	})
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	// Prometheus metrics endpoint
	srv.Echo().GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	logger.Info("server configured",
		zap.String("health_endpoint", fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port)),
		zap.String("extract_endpoint", "/api/v1/extract-tasks"),
		zap.String("metrics_endpoint", "/metrics"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// initLogger builds the structured logger from the daemon config.
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	logCfg := logging.NewDefaultConfig()
	logCfg.Format = cfg.Logging.Format

	var level zapcore.Level
	if err := level.Set(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	logCfg.Level = level

	return logging.New(logCfg, nil)
}

// telemetryConfig maps the daemon config onto the telemetry package config.
func telemetryConfig(cfg *config.Config) *telemetry.Config {
	tc := telemetry.NewDefaultConfig()
	tc.Enabled = cfg.Telemetry.Enabled
	tc.Endpoint = cfg.Telemetry.Endpoint
	tc.Protocol = cfg.Telemetry.Protocol
	tc.Insecure = cfg.Telemetry.Insecure
	tc.ServiceName = cfg.Telemetry.ServiceName
	tc.ServiceVersion = cfg.Telemetry.ServiceVersion
	return tc
}
