package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout.Duration())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 8, cfg.Server.MinNotesLength)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "meetingd", cfg.Telemetry.ServiceName)
	assert.Equal(t, 8, cfg.Extraction.MinSentenceLength)
	assert.Len(t, cfg.Extraction.ActionKeywords, 20)

	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "invalid server port",
		},
		{
			name:    "non-positive shutdown timeout",
			mutate:  func(c *Config) { c.Server.ShutdownTimeout = 0 },
			wantErr: "shutdown timeout",
		},
		{
			name:    "zero min notes length",
			mutate:  func(c *Config) { c.Server.MinNotesLength = 0 },
			wantErr: "min notes length",
		},
		{
			name:    "no cors origins",
			mutate:  func(c *Config) { c.Server.CORSOrigins = nil },
			wantErr: "CORS origin",
		},
		{
			name:    "bad logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging format",
		},
		{
			name: "telemetry enabled without endpoint",
			mutate: func(c *Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Endpoint = ""
			},
			wantErr: "telemetry endpoint",
		},
		{
			name:    "zero max keywords",
			mutate:  func(c *Config) { c.Extraction.MaxKeywords = 0 },
			wantErr: "max keywords",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults when no file and no env", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 8000, cfg.Server.Port)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 8000, cfg.Server.Port)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "server:\n  http_port: 9100\nlogging:\n  level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9100, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Logging.Level)
		// Untouched sections keep defaults.
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  http_port: 9100\n"), 0o600))
		t.Setenv("MEETINGD_SERVER_HTTP_PORT", "9200")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9200, cfg.Server.Port)
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		t.Setenv("MEETINGD_SERVER_HTTP_PORT", "0")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation failed")
	})
}

func TestDurationUnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("90s")))
	assert.Equal(t, 90*time.Second, d.Duration())

	assert.Error(t, d.UnmarshalText([]byte("not-a-duration")))
	assert.Error(t, d.UnmarshalText([]byte("-5s")))
}
