package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"SERVER_PORT",
	"MAX_REQUEST_SIZE",
	"LOG_LEVEL",
	"CORS_ALLOWED_ORIGINS",
	"FIXTURES_DIR",
	"STORE_LATENCY",
	"RATE_LIMIT_PER_MINUTE",
}

// clearEnv blanks every configuration variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(1024*1024), cfg.Server.MaxRequestSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Store.FixturesDir)
	assert.Zero(t, cfg.Store.Latency)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_REQUEST_SIZE", "2048")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.example , ,http://b.example")
	t.Setenv("FIXTURES_DIR", "/srv/fixtures")
	t.Setenv("STORE_LATENCY", "250ms")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(2048), cfg.Server.MaxRequestSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "/srv/fixtures", cfg.Store.FixturesDir)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.Latency)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric port", key: "SERVER_PORT", value: "http"},
		{name: "port out of range", key: "SERVER_PORT", value: "70000"},
		{name: "zero request size", key: "MAX_REQUEST_SIZE", value: "0"},
		{name: "bad latency", key: "STORE_LATENCY", value: "soon"},
		{name: "negative latency", key: "STORE_LATENCY", value: "-1s"},
		{name: "zero rate limit", key: "RATE_LIMIT_PER_MINUTE", value: "0"},
		{name: "non-numeric rate limit", key: "RATE_LIMIT_PER_MINUTE", value: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseOrigins(""))
	assert.Equal(t, []string{"*"}, parseOrigins(" , "))
	assert.Equal(t, []string{"http://x"}, parseOrigins("http://x"))
}
