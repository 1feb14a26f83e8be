package logging

import (
	"log/slog"
	"os"
)

// Environment selects the log output format.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// NewLogger builds the process logger: human-readable text in dev,
// JSON everywhere else.
func NewLogger(level slog.Level, env Environment) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	if env == EnvDev {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// EnvironmentFromEnv reads ENV, defaulting to dev.
func EnvironmentFromEnv() Environment {
	if e := os.Getenv("ENV"); e != "" {
		return Environment(e)
	}
	return EnvDev
}
