// Package logging sets up the file logger. The terminal belongs to the UI, so
// nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/deskboard/internal/config"
)

const fileName = "deskboard.log"

// Path returns the log file location: the configured file, or the xdg state
// directory when none is set.
func Path(cfg config.LogConfig) (string, error) {
	if cfg.File != "" {
		return cfg.File, nil
	}
	return xdg.StateFile(filepath.Join(config.AppName, fileName))
}

// ParseLevel maps a config level to a log level. Empty or unknown values give
// info.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(s))
	if err != nil || s == "" {
		return log.InfoLevel
	}
	return lvl
}

// New opens the log file for appending and returns a logger writing to it.
// The returned closer closes the file.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	path, err := Path(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return NewWriter(f, cfg.Level), f, nil
}

// NewWriter returns a logger writing to w at the given level.
func NewWriter(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		Prefix:          config.AppName,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
