package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, int64(25<<20), cfg.Uploads.MaxFileBytes)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SessionTTL)
	assert.InDelta(t, 0.30, cfg.Scoring.Weights.Consistency, 1e-9)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9100
  allowed_origins: ["https://app.example.com"]
uploads:
  dir: /var/lib/hlcompare/uploads
rate_limit:
  enabled: true
  rps: 5
  burst: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/var/lib/hlcompare/uploads", cfg.Uploads.Dir)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)

	// Untouched sections keep their defaults.
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
}

func TestLoad_RejectsBadWeights(t *testing.T) {
	path := writeConfig(t, `
scoring:
  weights:
    credibility: 0.5
    consistency: 0.5
    triangulation: 0.5
    temporal: 0.5
    diversity: 0.5
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scoring.weights")
}

func TestLoad_AbsentFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_RejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"empty dsn", func(c *Config) { c.Database.DSN = "" }, "database.dsn"},
		{"no redis addr", func(c *Config) { c.Redis.Addr = "" }, "redis.addr"},
		{"zero ttl", func(c *Config) { c.Redis.SessionTTL = 0 }, "session_ttl"},
		{"empty uploads dir", func(c *Config) { c.Uploads.Dir = "" }, "uploads.dir"},
		{"zero rps", func(c *Config) { c.RateLimit.RPS = 0 }, "rate_limit.rps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}
