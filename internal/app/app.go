// Package app is the application container. It owns the single project
// store every view of the board shares.
package app

import (
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/board"
	"github.com/thenoetrevino/dragboard/internal/store"
)

// App holds the store and the logger components are built with
type App struct {
	Store  *store.Store
	logger *slog.Logger
}

// New creates the application and its store.
// This is the single entry point for creating the application container.
func New(opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	storeOpts := []store.Option{store.WithLogger(cfg.logger.With("component", "store"))}
	if cfg.newID != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(cfg.newID))
	}

	return &App{
		Store:  store.New(storeOpts...),
		logger: cfg.logger,
	}
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// NewBoard builds the columns for every status, subscribed to the app's store
func (a *App) NewBoard(renderer board.Renderer) *board.Board {
	return board.New(a.Store, renderer, board.WithLogger(a.logger.With("component", "board")))
}
