// Package config provides configuration loading for meetingd.
//
// Configuration is loaded from an optional YAML file and overridden by
// environment variables, with hardcoded defaults as the base layer.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/QamerHassan/Smart-Meeting/internal/extract"
)

// Config holds the complete meetingd configuration.
type Config struct {
	Server     ServerConfig    `koanf:"server"`
	Logging    LoggingConfig   `koanf:"logging"`
	Telemetry  TelemetryConfig `koanf:"telemetry"`
	Extraction extract.Config  `koanf:"extraction"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string   `koanf:"host"`
	Port            int      `koanf:"http_port"`
	ShutdownTimeout Duration `koanf:"shutdown_timeout"`
	// CORSOrigins lists the allowed CORS origins. Default is permissive
	// ("*"), matching the original deployment behind a trusted proxy.
	CORSOrigins []string `koanf:"cors_origins"`
	// MinNotesLength is the minimum raw-notes length accepted by the
	// extract endpoint; shorter inputs get a 400 before the engine runs.
	MinNotesLength int `koanf:"min_notes_length"`
}

// LoggingConfig holds the log level and encoding for the zap logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry export settings. It is mapped to
// the telemetry package's own config at startup.
type TelemetryConfig struct {
	Enabled        bool   `koanf:"enabled"`
	Endpoint       string `koanf:"endpoint"`
	Protocol       string `koanf:"protocol"` // "grpc" or "http/protobuf"
	Insecure       bool   `koanf:"insecure"`
	ServiceName    string `koanf:"service_name"`
	ServiceVersion string `koanf:"service_version"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ShutdownTimeout: Duration(10 * time.Second),
			CORSOrigins:     []string{"*"},
			MinNotesLength:  8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: TelemetryConfig{
			Enabled:        false,
			Endpoint:       "localhost:4317",
			Protocol:       "grpc",
			Insecure:       true,
			ServiceName:    "meetingd",
			ServiceVersion: "0.1.0",
		},
		Extraction: extract.DefaultConfig(),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be 1-65535)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout.Duration() <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.Server.MinNotesLength < 1 {
		return fmt.Errorf("min notes length must be positive, got %d", c.Server.MinNotesLength)
	}
	if len(c.Server.CORSOrigins) == 0 {
		return errors.New("at least one CORS origin is required")
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging format must be 'json' or 'console', got %q", c.Logging.Format)
	}

	if c.Telemetry.Enabled {
		if c.Telemetry.Endpoint == "" {
			return errors.New("telemetry endpoint required when telemetry is enabled")
		}
		if c.Telemetry.ServiceName == "" {
			return errors.New("service name required when telemetry is enabled")
		}
	}

	if c.Extraction.MinSentenceLength < 1 {
		return fmt.Errorf("extraction min sentence length must be positive, got %d", c.Extraction.MinSentenceLength)
	}
	if c.Extraction.MaxKeywords < 1 {
		return fmt.Errorf("extraction max keywords must be positive, got %d", c.Extraction.MaxKeywords)
	}

	return nil
}
