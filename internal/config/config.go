// Package config loads the batchkit CLI configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sliceworks/batchkit/dispatch"
)

// configDirName is the per-user directory holding the config file.
const configDirName = ".batchkit"

// configFileName is the config file name inside the config directory.
const configFileName = "config.yaml"

// Config is the root CLI configuration.
type Config struct {
	Dispatch DispatchConfig `yaml:"dispatch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DispatchConfig holds dispatch defaults applied when a command does not
// specify them explicitly.
type DispatchConfig struct {
	// ChunkSize is the default chunk size for chunked plans.
	ChunkSize int `yaml:"chunk_size"`
}

// LoggingConfig holds logging defaults.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Dispatch: DispatchConfig{ChunkSize: dispatch.DefaultChunkSize},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

// DefaultPath returns the per-user config file path.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load returns defaults overlaid with the YAML file at path. An empty path
// falls back to DefaultPath; a missing file yields plain defaults.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}
	if cfg.Dispatch.ChunkSize < dispatch.MinChunkSize {
		return nil, fmt.Errorf("config %s: chunk_size must be >= %d, got %d",
			path, dispatch.MinChunkSize, cfg.Dispatch.ChunkSize)
	}
	return cfg, nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), 0o750); mkErr != nil {
		return fmt.Errorf("creating config directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config file: %w", writeErr)
	}
	return nil
}
