// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port           int
	MaxRequestSize int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// StoreConfig holds settings of the in-memory data store
type StoreConfig struct {
	// FixturesDir is the directory holding courses.json, quizzes.json and
	// user_progress.json; empty means the embedded seed data
	FixturesDir string
	// Latency is the simulated delay of every store operation
	Latency time.Duration
}

// RateLimitConfig holds per-IP rate limit settings
type RateLimitConfig struct {
	RequestsPerMinute int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}

	// Server configuration
	serverPort, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if serverPort <= 0 || serverPort > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT: %d", serverPort)
	}
	cfg.Server.Port = serverPort

	maxRequestSize, err := intEnv("MAX_REQUEST_SIZE", 1024*1024) // 1MB
	if err != nil {
		return nil, err
	}
	if maxRequestSize <= 0 {
		return nil, fmt.Errorf("invalid MAX_REQUEST_SIZE: %d", maxRequestSize)
	}
	cfg.Server.MaxRequestSize = int64(maxRequestSize)

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Store configuration
	cfg.Store.FixturesDir = os.Getenv("FIXTURES_DIR")

	latencyStr := os.Getenv("STORE_LATENCY")
	if latencyStr == "" {
		latencyStr = "0s"
	}
	latency, err := time.ParseDuration(latencyStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_LATENCY: %w", err)
	}
	if latency < 0 {
		return nil, fmt.Errorf("invalid STORE_LATENCY: %s", latency)
	}
	cfg.Store.Latency = latency

	// Rate limit configuration
	rpm, err := intEnv("RATE_LIMIT_PER_MINUTE", 100)
	if err != nil {
		return nil, err
	}
	if rpm <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %d", rpm)
	}
	cfg.RateLimit.RequestsPerMinute = rpm

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// parseOrigins splits a comma-separated origin list, allowing all origins when it is empty
func parseOrigins(s string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(s, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
