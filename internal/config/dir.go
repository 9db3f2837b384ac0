// Package config resolves the configuration directory and runtime settings
// for todoist-mcp.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the todoist-mcp configuration directory.
//
// Resolution:
//   - $TODOIST_MCP_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/todoist-mcp if set (respects XDG on any platform)
//   - %AppData%/todoist-mcp on Windows
//   - ~/.config/todoist-mcp on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("TODOIST_MCP_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todoist-mcp")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "todoist-mcp")
		}
	}

	// macOS and Linux: ~/.config/todoist-mcp
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "todoist-mcp")
}
