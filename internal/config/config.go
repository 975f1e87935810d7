// Package config loads the TOML configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName names the xdg subdirectories.
const AppName = "deskboard"

// Defaults.
const (
	DefaultStartPage         = "/components"
	DefaultIcons             = "unicode"
	DefaultMargin            = 1
	DefaultPopoverOffset     = 1
	DefaultMenuOffset        = 0
	DefaultFrameInterval     = 16 * time.Millisecond
	DefaultPrecisionModifier = "alt"
	DefaultLogLevel          = "info"
)

// Config holds application settings.
type Config struct {
	StartPage string `koanf:"start_page" toml:"start_page"`
	Theme     string `koanf:"theme" toml:"theme"` // "light", "dark", or empty for the saved theme
	Icons     string `koanf:"icons" toml:"icons"` // "nerd", "unicode", or "none"

	Overlay OverlayConfig `koanf:"overlay" toml:"overlay"`
	Drag    DragConfig    `koanf:"drag" toml:"drag"`
	Log     LogConfig     `koanf:"log" toml:"log"`
}

// OverlayConfig holds popover and menu placement settings.
type OverlayConfig struct {
	Margin          *int `koanf:"margin" toml:"margin"`                       // distance kept from the screen edges (default: 1)
	PopoverOffset   *int `koanf:"popover_offset" toml:"popover_offset"`       // gap between trigger and popover (default: 1)
	MenuOffset      *int `koanf:"menu_offset" toml:"menu_offset"`             // gap between trigger and menu (default: 0)
	FrameIntervalMS int  `koanf:"frame_interval_ms" toml:"frame_interval_ms"` // repositioning period (default: 16)
}

// DragConfig holds drag interaction settings.
type DragConfig struct {
	PrecisionModifier string `koanf:"precision_modifier" toml:"precision_modifier"` // "shift", "alt" or "ctrl" (default: "alt")
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `koanf:"file" toml:"file"`   // empty means the xdg state directory
	Level string `koanf:"level" toml:"level"` // debug, info, warn, error (default: info)
}

// Overlay is OverlayConfig with defaults applied.
type Overlay struct {
	Margin        int
	PopoverOffset int
	MenuOffset    int
	FrameInterval time.Duration
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// last wins
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		StartPage: DefaultStartPage,
		Icons:     DefaultIcons,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.StartPage == "" {
		cfg.StartPage = DefaultStartPage
	}
	if !strings.HasPrefix(cfg.StartPage, "/") {
		cfg.StartPage = "/" + cfg.StartPage
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/deskboard/config.toml
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetOverlay returns the overlay settings with defaults applied.
func (c *Config) GetOverlay() Overlay {
	o := Overlay{
		Margin:        DefaultMargin,
		PopoverOffset: DefaultPopoverOffset,
		MenuOffset:    DefaultMenuOffset,
		FrameInterval: DefaultFrameInterval,
	}
	if v := c.Overlay.Margin; v != nil && *v >= 0 {
		o.Margin = *v
	}
	if v := c.Overlay.PopoverOffset; v != nil && *v >= 0 {
		o.PopoverOffset = *v
	}
	if v := c.Overlay.MenuOffset; v != nil && *v >= 0 {
		o.MenuOffset = *v
	}
	if c.Overlay.FrameIntervalMS > 0 {
		o.FrameInterval = time.Duration(c.Overlay.FrameIntervalMS) * time.Millisecond
	}
	return o
}

// PrecisionModifier returns the configured modifier name, or the default
// when unset or unknown.
func (c *Config) PrecisionModifier() string {
	switch m := strings.ToLower(strings.TrimSpace(c.Drag.PrecisionModifier)); m {
	case "shift", "alt", "ctrl":
		return m
	default:
		return DefaultPrecisionModifier
	}
}

// LogLevel returns the configured level, or info when unset.
func (c *Config) LogLevel() string {
	if l := strings.ToLower(strings.TrimSpace(c.Log.Level)); l != "" {
		return l
	}
	return DefaultLogLevel
}
