package main

import (
	"bytes"
	"strings"
	"testing"
)

// clearServerEnv points config resolution at an empty directory so tests
// never pick up the developer's real token or config file.
func clearServerEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TODOIST_MCP_CONFIG_HOME", t.TempDir())
	t.Setenv("TODOIST_API_TOKEN", "")
	t.Setenv("TODOIST_BASE_URL", "")
	t.Setenv("TODOIST_MCP_ADDR", "")
	t.Setenv("TODOIST_MCP_TOKEN", "")
}

// TestNewServeCmd verifies the serve command wires up correctly.
func TestNewServeCmd(t *testing.T) {
	cmd := newServeCmd()

	if cmd.Use != "serve" {
		t.Errorf("Use = %q, want %q", cmd.Use, "serve")
	}
	if cmd.RunE == nil {
		t.Error("RunE is nil")
	}
}

func TestServe_MissingToken(t *testing.T) {
	clearServerEnv(t)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"serve"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when TODOIST_API_TOKEN is unset")
	}
	if !strings.Contains(err.Error(), "TODOIST_API_TOKEN") {
		t.Errorf("error should mention TODOIST_API_TOKEN: %v", err)
	}
}
