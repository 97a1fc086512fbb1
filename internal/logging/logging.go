// Package logging sends dragboard's diagnostics to a file while the board
// owns the terminal.
//
// What ends up in the log:
//   - store mutations ("project added", "project moved") and the silent
//     no-ops (unknown id, unchanged status) at Debug
//   - drag start, drop zone transitions, drops and cancels at Debug
//   - mutations made from inside a store notification, at Warn
//   - projects added through the form, and shutdown, at Info
//
// The level defaults to Info and can be changed with DRAGBOARD_LOG_LEVEL.
package logging

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LevelEnv names the environment variable holding the minimum level
// (debug, info, warn or error)
const LevelEnv = "DRAGBOARD_LOG_LEVEL"

// FileName is the log file created inside the log directory
const FileName = "dragboard.log"

// Init points the default logger at ~/.dragboard/logs/dragboard.log.
// The returned func closes the file.
func Init() (func() error, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	level, err := ParseLevel(os.Getenv(LevelEnv))
	if err != nil {
		return nil, err
	}

	_, closeFn, err := InitAt(filepath.Join(homeDir, ".dragboard", "logs"), level)
	return closeFn, err
}

// InitAt appends text logs at level and above to FileName inside logDir and
// installs the logger as slog's default. It returns the log path and a func
// closing the file.
func InitAt(logDir string, level slog.Level) (string, func() error, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", nil, err
	}

	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("pid", os.Getpid()))

	// stray standard log output must not land on the board either
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return logPath, file.Close, nil
}

// ParseLevel reads a level name; empty means Info
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s: %w", LevelEnv, err)
	}
	return level, nil
}
