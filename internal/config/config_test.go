package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// #region load-tests

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.DBPath != "resonant.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Backend.Enabled {
		t.Error("backend should be disabled by default")
	}
	if cfg.Backend.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds = %d, want 120", cfg.Backend.TimeoutSeconds)
	}
	if cfg.Session.AutoOptimizeEvery != 10 {
		t.Errorf("AutoOptimizeEvery = %d, want 10", cfg.Session.AutoOptimizeEvery)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
db_path: /tmp/test.db
backend:
  cli_path: /usr/local/bin/llama-cli
  model_path: /models/test.gguf
  timeout_seconds: 60
  enabled: true
session:
  auto_optimize_every: 5
keywords:
  creativity: [sketch, compose]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if !cfg.Backend.Enabled {
		t.Error("expected backend enabled")
	}
	if cfg.BackendTimeout() != 60*time.Second {
		t.Errorf("BackendTimeout = %v, want 60s", cfg.BackendTimeout())
	}
	if cfg.Session.AutoOptimizeEvery != 5 {
		t.Errorf("AutoOptimizeEvery = %d, want 5", cfg.Session.AutoOptimizeEvery)
	}
	if len(cfg.Keywords.Creativity) != 2 {
		t.Errorf("Creativity = %v", cfg.Keywords.Creativity)
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: other.db\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.DBPath != "other.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Backend.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds = %d, want default retained", cfg.Backend.TimeoutSeconds)
	}
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RESONANT_DB", "/env/override.db")
	t.Setenv("RESONANT_BACKEND_CLI", "/opt/llama-cli")
	t.Setenv("RESONANT_BACKEND_TIMEOUT", "30")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.DBPath != "/env/override.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Backend.CLIPath != "/opt/llama-cli" {
		t.Errorf("CLIPath = %q", cfg.Backend.CLIPath)
	}
	if !cfg.Backend.Enabled {
		t.Error("setting the CLI path should enable the backend")
	}
	if cfg.Backend.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.Backend.TimeoutSeconds)
	}
}

func TestEnvOverrides_ExplicitDisable(t *testing.T) {
	t.Setenv("RESONANT_BACKEND_CLI", "/opt/llama-cli")
	t.Setenv("RESONANT_BACKEND_ENABLED", "false")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Backend.Enabled {
		t.Error("explicit disable should win over the CLI path override")
	}
}

// #endregion load-tests

// #region validate-tests

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty db path", func(c *Config) { c.DBPath = "" }, true},
		{"negative timeout", func(c *Config) { c.Backend.TimeoutSeconds = -1 }, true},
		{"enabled without cli", func(c *Config) { c.Backend.Enabled = true }, true},
		{"enabled without model", func(c *Config) {
			c.Backend.Enabled = true
			c.Backend.CLIPath = "/opt/llama-cli"
		}, true},
		{"enabled complete", func(c *Config) {
			c.Backend.Enabled = true
			c.Backend.CLIPath = "/opt/llama-cli"
			c.Backend.ModelPath = "/models/m.gguf"
		}, false},
		{"negative optimize cadence", func(c *Config) { c.Session.AutoOptimizeEvery = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// #endregion validate-tests

// #region keyword-tests

func TestKeywordConfig_Overrides(t *testing.T) {
	cfg := Default()
	cfg.Keywords.Creativity = []string{"sketch"}

	keywords := cfg.KeywordConfig()
	if len(keywords.Creativity) != 1 || keywords.Creativity[0] != "sketch" {
		t.Errorf("Creativity = %v", keywords.Creativity)
	}
	if len(keywords.Emotions) == 0 {
		t.Error("emotion defaults should be retained")
	}
}

// #endregion keyword-tests
