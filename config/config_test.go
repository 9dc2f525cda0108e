package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != "8080" {
		t.Errorf("Unexpected default port: %q", cfg.Server.Port)
	}
	if cfg.Research.Budget.Std() != 10*time.Second {
		t.Errorf("Unexpected default research budget: %v", cfg.Research.Budget)
	}
	if !cfg.Research.Enabled {
		t.Error("Expected research enabled by default")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  port: "9090"
  rate_limit: 5
llm:
  provider: anthropic
  model: claude-sonnet-4-5
research:
  enabled: false
  budget: 5s
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "anthropic" {
		t.Errorf("Expected provider anthropic, got %q", cfg.LLM.Provider)
	}
	if cfg.Research.Enabled {
		t.Error("Expected research disabled")
	}
	if cfg.Research.Budget.Std() != 5*time.Second {
		t.Errorf("Expected 5s budget, got %v", cfg.Research.Budget)
	}
	// Untouched values keep their defaults.
	if cfg.Generation.MaxCacheSize != 1000 {
		t.Errorf("Expected default cache size, got %d", cfg.Generation.MaxCacheSize)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("RESEARCH_BUDGET", "3s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("Expected env port 7070, got %q", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("Expected env provider gemini, got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.APIKey != "test-key" {
		t.Errorf("Expected env API key, got %q", cfg.LLM.APIKey)
	}
	if cfg.Research.Budget.Std() != 3*time.Second {
		t.Errorf("Expected env budget 3s, got %v", cfg.Research.Budget)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Expected defaults for missing file, got port %q", cfg.Server.Port)
	}
}

func TestValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("server:\n  port: \"\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for empty port")
	}
}
