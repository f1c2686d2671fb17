// Package config provides unified configuration loading for resonant.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/edterre/resonant/internal/engine"
)

// #region types

// Config contains all resonant configuration settings.
type Config struct {
	// DBPath is the SQLite database file backing memory and turn logging.
	DBPath string `json:"db_path" yaml:"db_path"`

	// Backend contains settings for the local generation subprocess.
	Backend BackendConfig `json:"backend" yaml:"backend"`

	// Session contains settings for the interactive session loop.
	Session SessionConfig `json:"session" yaml:"session"`

	// Keywords optionally overrides the built-in emotion and creativity
	// keyword tables. Empty tables keep the defaults.
	Keywords KeywordsConfig `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// BackendConfig configures the llama.cpp subprocess backend.
type BackendConfig struct {
	// CLIPath is the llama-cli binary. Empty disables the backend and the
	// engine falls back to templated responses.
	CLIPath string `json:"cli_path,omitempty" yaml:"cli_path,omitempty"`

	// ModelPath is the GGUF model file handed to the binary.
	ModelPath string `json:"model_path,omitempty" yaml:"model_path,omitempty"`

	// TimeoutSeconds bounds a single generation call. Defaults to 120.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`

	// Enabled indicates whether the subprocess backend is used at all.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// SessionConfig configures the interactive loop.
type SessionConfig struct {
	// AutoOptimizeEvery triggers memory optimization after this many
	// interactions. Zero disables the periodic pass.
	AutoOptimizeEvery int `json:"auto_optimize_every" yaml:"auto_optimize_every"`
}

// KeywordsConfig mirrors engine.KeywordConfig with YAML tags.
type KeywordsConfig struct {
	Emotions   map[string][]string `json:"emotions,omitempty" yaml:"emotions,omitempty"`
	Creativity []string            `json:"creativity,omitempty" yaml:"creativity,omitempty"`
}

// #endregion types

// #region defaults

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DBPath: "resonant.db",
		Backend: BackendConfig{
			CLIPath:        "",
			ModelPath:      "",
			TimeoutSeconds: 120,
			Enabled:        false,
		},
		Session: SessionConfig{
			AutoOptimizeEvery: 10,
		},
	}
}

// #endregion defaults

// #region loading

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.resonant/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".resonant", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("RESONANT_DB"); v != "" {
		config.DBPath = v
	}
	if v := os.Getenv("RESONANT_BACKEND_CLI"); v != "" {
		config.Backend.CLIPath = v
		config.Backend.Enabled = true
	}
	if v := os.Getenv("RESONANT_BACKEND_MODEL"); v != "" {
		config.Backend.ModelPath = v
	}
	if v := os.Getenv("RESONANT_BACKEND_TIMEOUT"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			config.Backend.TimeoutSeconds = sec
		}
	}
	if v := os.Getenv("RESONANT_BACKEND_ENABLED"); v != "" {
		config.Backend.Enabled = v == "true" || v == "1"
	}
}

// #endregion loading

// #region validation

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.Backend.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be non-negative, got %d", c.Backend.TimeoutSeconds)
	}
	if c.Backend.Enabled {
		if c.Backend.CLIPath == "" {
			return fmt.Errorf("backend enabled but cli_path is empty")
		}
		if c.Backend.ModelPath == "" {
			return fmt.Errorf("backend enabled but model_path is empty")
		}
	}
	if c.Session.AutoOptimizeEvery < 0 {
		return fmt.Errorf("auto_optimize_every must be non-negative, got %d", c.Session.AutoOptimizeEvery)
	}
	return nil
}

// #endregion validation

// #region conversions

// BackendTimeout returns the configured generation timeout.
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

// KeywordConfig converts the overrides to the engine's keyword tables,
// falling back to the defaults for any empty table.
func (c *Config) KeywordConfig() engine.KeywordConfig {
	keywords := engine.DefaultKeywords()
	if len(c.Keywords.Emotions) > 0 {
		keywords.Emotions = c.Keywords.Emotions
	}
	if len(c.Keywords.Creativity) > 0 {
		keywords.Creativity = c.Keywords.Creativity
	}
	return keywords
}

// #endregion conversions
