package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-arcade/internal/config"
	"github.com/vovakirdan/dragon-arcade/internal/registry"
)

// nopCloser is returned when logs go to stderr.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the process logger from the global flags.
// The returned closer releases the log file, if one was opened.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if flagLogFile != "" {
		path, pathErr := expandHome(flagLogFile)
		if pathErr != nil {
			return nil, nil, pathErr
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// gameLogger returns the logger handed to a full-screen game.
// Without --log-file, stderr would draw over the alternate screen, so the
// game logs nowhere.
func gameLogger(logger *log.Logger) *log.Logger {
	if flagLogFile != "" {
		return logger
	}
	return log.New(io.Discard)
}

// warnBrokenDefaults reports games whose embedded config could not be used.
// Must run before the alternate screen starts.
func warnBrokenDefaults(logger *log.Logger) {
	for _, g := range registry.List() {
		if _, err := config.Load(g.ID); err != nil {
			logger.Warn("using built-in config", "game", g.ID, "error", err)
		}
	}
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
