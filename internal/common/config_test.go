package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, 8000, config.Server.Port)
	assert.Equal(t, "resources/crop_data.csv", config.Resources.CropData)
	assert.Equal(t, "resources/insurance_companies.csv", config.Resources.InsurerData)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadFromFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bima.toml")
	content := `
environment = "production"

[server]
port = 9100

[resources]
crop_data = "/data/crops.csv"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 9100, config.Server.Port)
	// Unset values keep their defaults
	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, "/data/crops.csv", config.Resources.CropData)
	assert.Equal(t, "resources/insurance_companies.csv", config.Resources.InsurerData)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoadFromFilesLaterOverridesEarlier(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")

	require.NoError(t, os.WriteFile(base, []byte("[server]\nport = 9100\nhost = \"0.0.0.0\"\n"), 0644))
	require.NoError(t, os.WriteFile(override, []byte("[server]\nport = 9200\n"), 0644))

	config, err := LoadFromFiles(base, override)
	require.NoError(t, err)

	assert.Equal(t, 9200, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
}

func TestLoadFromFilesMissingFile(t *testing.T) {
	_, err := LoadFromFiles("does-not-exist.toml")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BIMA_SERVER_PORT", "9300")
	t.Setenv("BIMA_CROP_DATA", "/env/crops.csv")
	t.Setenv("BIMA_LOG_LEVEL", "warn")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 9300, config.Server.Port)
	assert.Equal(t, "/env/crops.csv", config.Resources.CropData)
	assert.Equal(t, "warn", config.Logging.Level)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 9400, "0.0.0.0")
	assert.Equal(t, 9400, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)

	// Zero values leave the config untouched
	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 9400, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
}
