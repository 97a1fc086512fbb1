package app

import (
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/types"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	newID  func() types.ProjectID
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIDGenerator replaces the project id source.
// replay --sequential-ids uses it for reproducible output.
func WithIDGenerator(gen func() types.ProjectID) Option {
	return func(cfg *appConfig) {
		cfg.newID = gen
	}
}
