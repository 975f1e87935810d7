package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrExists is returned by WriteDefault when the target file already exists.
var ErrExists = errors.New("config file already exists")

// Default returns the configuration Load produces without any file, with
// every setting spelled out.
func Default() *Config {
	margin, popover, menu := DefaultMargin, DefaultPopoverOffset, DefaultMenuOffset
	return &Config{
		StartPage: DefaultStartPage,
		Icons:     DefaultIcons,
		Overlay: OverlayConfig{
			Margin:          &margin,
			PopoverOffset:   &popover,
			MenuOffset:      &menu,
			FrameIntervalMS: int(DefaultFrameInterval.Milliseconds()),
		},
		Drag: DragConfig{PrecisionModifier: DefaultPrecisionModifier},
		Log:  LogConfig{Level: DefaultLogLevel},
	}
}

// DefaultPath returns the user config file path.
func DefaultPath() string {
	return getConfigPaths()[0]
}

// WriteDefault writes the default configuration to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
