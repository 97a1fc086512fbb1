package store

import (
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/types"
)

// Option is a functional option for configuring a Store
type Option func(*storeConfig)

// storeConfig holds the configuration for Store initialization
type storeConfig struct {
	newID  func() types.ProjectID
	logger *slog.Logger
}

// WithLogger sets the logger used for mutation and no-op diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *storeConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIDGenerator replaces the random id source, mainly for tests
func WithIDGenerator(gen func() types.ProjectID) Option {
	return func(cfg *storeConfig) {
		if gen != nil {
			cfg.newID = gen
		}
	}
}
