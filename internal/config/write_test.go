package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefault(path, false))

	cfg, err := loadFrom([]string{path})
	require.NoError(t, err)
	assert.Equal(t, DefaultStartPage, cfg.StartPage)
	assert.Equal(t, Default().GetOverlay(), cfg.GetOverlay())
	assert.Equal(t, DefaultPrecisionModifier, cfg.PrecisionModifier())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
}

func TestWriteDefault_KeepsExistingFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "theme = \"light\"\n")

	err := WriteDefault(path, false)
	require.ErrorIs(t, err, ErrExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme = \"light\"\n", string(data))

	require.NoError(t, WriteDefault(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "precision_modifier")
}
