package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QamerHassan/Smart-Meeting/internal/config"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "meetingd", cfg.ServiceName)
	assert.Equal(t, "grpc", cfg.Protocol)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"disabled skips validation", func(c *Config) { c.Endpoint = "" }, false},
		{"enabled without endpoint", func(c *Config) { c.Enabled = true; c.Endpoint = "" }, true},
		{"enabled without service name", func(c *Config) { c.Enabled = true; c.ServiceName = "" }, true},
		{"bad protocol", func(c *Config) { c.Enabled = true; c.Protocol = "udp" }, true},
		{"sampling rate above one", func(c *Config) { c.Enabled = true; c.Sampling.Rate = 1.5 }, true},
		{"zero export interval", func(c *Config) { c.Enabled = true; c.Metrics.ExportInterval = 0 }, true},
		{"zero shutdown timeout", func(c *Config) { c.Enabled = true; c.Shutdown.Timeout = 0 }, true},
		{"valid enabled config", func(c *Config) { c.Enabled = true }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	tel, err := New(context.Background(), NewDefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, tel)
	assert.False(t, tel.Degraded())

	// No-op providers still hand out usable instruments.
	assert.NotNil(t, tel.Tracer("test"))
	assert.NotNil(t, tel.Meter("test"))

	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = ""

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNew_EnabledDoesNotBlock(t *testing.T) {
	// Exporter construction is lazy; New must succeed without a
	// reachable collector.
	cfg := NewDefaultConfig()
	cfg.Enabled = true
	cfg.Shutdown.Timeout = config.Duration(1)

	tel, err := New(context.Background(), cfg)
	require.NoError(t, err)
	_ = tel.Shutdown(context.Background())
}

func TestNilTelemetry(t *testing.T) {
	var tel *Telemetry
	assert.NotNil(t, tel.Tracer("test"))
	assert.NotNil(t, tel.Meter("test"))
	assert.False(t, tel.Degraded())
	assert.NoError(t, tel.Shutdown(context.Background()))
}
