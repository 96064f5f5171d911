// Package logger holds the process-wide structured logger
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the application logger; it is a no-op logger until Init is called
var Logger = zap.NewNop()

// Init builds the production JSON logger at the given level ("debug", "info", "warn", "error")
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	Logger = l
	return nil
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Logger.Sync()
}
