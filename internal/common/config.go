package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Resources   ResourcesConfig `toml:"resources"`
	Logging     LoggingConfig   `toml:"logging"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// ResourcesConfig points at the reference data sources the engine reloads
// on every computation. Logo is optional; a missing file degrades to a
// certificate without a logo.
type ResourcesConfig struct {
	CropData    string `toml:"crop_data"`    // crop reference table (CSV)
	InsurerData string `toml:"insurer_data"` // registered insurer table (CSV)
	Logo        string `toml:"logo"`         // certificate logo image (optional)
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs
}

// NewDefaultConfig returns a config populated with defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8000,
		},
		Resources: ResourcesConfig{
			CropData:    "resources/crop_data.csv",
			InsurerData: "resources/insurance_companies.csv",
			Logo:        "resources/logo.png",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
	}
}

// LoadFromFile loads configuration from a single file (or defaults when
// path is empty).
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration with priority: defaults -> file1 ->
// file2 -> ... -> env. Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("BIMA_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("BIMA_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("BIMA_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if path := os.Getenv("BIMA_CROP_DATA"); path != "" {
		config.Resources.CropData = path
	}
	if path := os.Getenv("BIMA_INSURER_DATA"); path != "" {
		config.Resources.InsurerData = path
	}
	if path := os.Getenv("BIMA_LOGO"); path != "" {
		config.Resources.Logo = path
	}

	if level := os.Getenv("BIMA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
// Flags have the highest priority.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
