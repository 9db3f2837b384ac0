package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for both transports.
type Config struct {
	// APIToken authenticates against the Todoist REST API. Required for
	// tool execution; listing tools works without it.
	APIToken string `yaml:"-"`
	// BaseURL overrides the Todoist API endpoint. Empty selects production.
	BaseURL string `yaml:"base_url"`
	// Addr is the HTTP transport listen address.
	Addr string `yaml:"addr"`
	// StaticToken locks the HTTP endpoints behind bearer auth when set.
	StaticToken string `yaml:"-"`
}

// DefaultAddr is the HTTP transport listen address when nothing is configured.
const DefaultAddr = ":8080"

// Load assembles the configuration from the optional config.yaml in Dir()
// and the environment. Environment variables always win over file values.
//
//	TODOIST_API_TOKEN   Todoist REST API token
//	TODOIST_BASE_URL    API endpoint override (tests, proxies)
//	TODOIST_MCP_ADDR    HTTP listen address
//	TODOIST_MCP_TOKEN   static bearer token for the HTTP transport
func Load() (Config, error) {
	cfg := Config{Addr: DefaultAddr}

	path := filepath.Join(Dir(), "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		if cfg.Addr == "" {
			cfg.Addr = DefaultAddr
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if v := os.Getenv("TODOIST_API_TOKEN"); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv("TODOIST_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TODOIST_MCP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TODOIST_MCP_TOKEN"); v != "" {
		cfg.StaticToken = v
	}

	return cfg, nil
}
