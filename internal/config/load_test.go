package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TODOIST_API_TOKEN", "")
	t.Setenv("TODOIST_BASE_URL", "")
	t.Setenv("TODOIST_MCP_ADDR", "")
	t.Setenv("TODOIST_MCP_TOKEN", "")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TODOIST_MCP_CONFIG_HOME", t.TempDir())
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.APIToken != "" {
		t.Errorf("APIToken = %q, want empty", cfg.APIToken)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODOIST_MCP_CONFIG_HOME", dir)
	clearEnv(t)

	yaml := "addr: \":9090\"\nbase_url: \"http://localhost:1234/rest/v2\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.BaseURL != "http://localhost:1234/rest/v2" {
		t.Errorf("BaseURL = %q, want value from file", cfg.BaseURL)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODOIST_MCP_CONFIG_HOME", dir)
	clearEnv(t)

	yaml := "addr: \":9090\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("TODOIST_MCP_ADDR", ":7070")
	t.Setenv("TODOIST_API_TOKEN", "env-token")
	t.Setenv("TODOIST_MCP_TOKEN", "static")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want :7070 from env", cfg.Addr)
	}
	if cfg.APIToken != "env-token" {
		t.Errorf("APIToken = %q, want env-token", cfg.APIToken)
	}
	if cfg.StaticToken != "static" {
		t.Errorf("StaticToken = %q, want static", cfg.StaticToken)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODOIST_MCP_CONFIG_HOME", dir)
	clearEnv(t)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("addr: [broken"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}
