package board

import "log/slog"

// Option is a functional option for configuring columns
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger columns and cards report to
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
