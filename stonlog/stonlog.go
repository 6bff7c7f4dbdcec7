// Package stonlog configures the package-wide structured logger every
// other package accepts as an optional dependency, the way util.InitSlog
// wires slog for the whole sqldef binary from a single environment
// variable.
package stonlog

import (
	"log/slog"
	"os"
	"strings"
)

// EnvVar is the environment variable consulted by Init.
const EnvVar = "STON_LOG_LEVEL"

// Init configures the slog default logger from the STON_LOG_LEVEL
// environment variable (debug, info, warn, error; unset or unrecognized
// falls back to info) and returns it, so callers can either rely on
// slog.Default() afterwards or thread the returned logger explicitly.
func Init() *slog.Logger {
	level := slog.LevelInfo
	if raw, ok := os.LookupEnv(EnvVar); ok {
		level = parseLevel(raw)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
