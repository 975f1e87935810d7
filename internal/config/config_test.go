//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs/deskboard.log",
			expected: filepath.Join(home, "logs", "deskboard.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/deskboard.log",
			expected: "/var/log/deskboard.log",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/deskboard.log",
			expected: "logs/deskboard.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, "config.toml", paths[len(paths)-1], "local config has the highest priority")
	assert.Contains(t, paths[0], AppName)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFrom([]string{filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	assert.Equal(t, DefaultStartPage, cfg.StartPage)
	assert.Equal(t, DefaultIcons, cfg.Icons)
	assert.Empty(t, cfg.Theme)
	assert.Equal(t, Overlay{
		Margin:        1,
		PopoverOffset: 1,
		MenuOffset:    0,
		FrameInterval: 16 * time.Millisecond,
	}, cfg.GetOverlay())
	assert.Equal(t, "alt", cfg.PrecisionModifier())
	assert.Equal(t, "info", cfg.LogLevel())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
start_page = "outliner"
theme = "Light"
icons = "nerd"

[overlay]
margin = 0
popover_offset = 2
frame_interval_ms = 33

[drag]
precision_modifier = "Shift"

[log]
file = "/tmp/deskboard-test.log"
level = "debug"
`)

	cfg, err := loadFrom([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "/outliner", cfg.StartPage)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "nerd", cfg.Icons)

	o := cfg.GetOverlay()
	assert.Equal(t, 0, o.Margin, "zero is a valid margin")
	assert.Equal(t, 2, o.PopoverOffset)
	assert.Equal(t, DefaultMenuOffset, o.MenuOffset)
	assert.Equal(t, 33*time.Millisecond, o.FrameInterval)

	assert.Equal(t, "shift", cfg.PrecisionModifier())
	assert.Equal(t, "/tmp/deskboard-test.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.LogLevel())
}

func TestLoad_LastWins(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "a.toml", "theme = \"dark\"\nicons = \"none\"\n")
	second := writeConfig(t, dir, "b.toml", "theme = \"light\"\n")

	cfg, err := loadFrom([]string{first, second})
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "none", cfg.Icons, "keys missing from later files are kept")
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "start_page = [")
	_, err := loadFrom([]string{path})
	assert.Error(t, err)
}

func TestGetOverlay_NegativeValues(t *testing.T) {
	neg := -3
	cfg := &Config{Overlay: OverlayConfig{Margin: &neg, MenuOffset: &neg, FrameIntervalMS: -1}}

	o := cfg.GetOverlay()
	assert.Equal(t, DefaultMargin, o.Margin)
	assert.Equal(t, DefaultMenuOffset, o.MenuOffset)
	assert.Equal(t, DefaultFrameInterval, o.FrameInterval)
}

func TestPrecisionModifier_Unknown(t *testing.T) {
	cfg := &Config{Drag: DragConfig{PrecisionModifier: "meta"}}
	assert.Equal(t, DefaultPrecisionModifier, cfg.PrecisionModifier())
}
