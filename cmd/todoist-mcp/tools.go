package main

import (
	"github.com/spf13/cobra"

	"github.com/cloudrumbles/todoist-mcp/internal/config"
	"github.com/cloudrumbles/todoist-mcp/internal/mcp"
	"github.com/cloudrumbles/todoist-mcp/internal/output"
	"github.com/cloudrumbles/todoist-mcp/internal/todoist"
)

// newToolsCmd creates the tools command that lists the registered MCP tools.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available MCP tools",
		Long: `List every tool the server registers, with descriptions.

Listing does not call the Todoist API, so no token is required.`,
		RunE: runTools,
	}
}

func runTools(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	// The registry is built the same way serve builds it. The client is
	// never called, so an empty token is fine here.
	cfg, err := config.Load()
	if err != nil {
		return output.NewSystemErrorWithCause("loading configuration failed", err)
	}
	client := todoist.NewClient(cfg.APIToken, cfg.BaseURL)
	_, registry := mcp.NewServer(buildVersion(), client)

	defs := registry.Tools()

	if printer.IsJSON() {
		return printer.WriteJSON(defs)
	}

	rows := make([][]string, 0, len(defs))
	for _, def := range defs {
		rows = append(rows, []string{def.Name, def.Description})
	}
	printer.Table([]string{"NAME", "DESCRIPTION"}, rows)
	printer.Println()
	printer.Print("%d tools registered\n", len(defs))

	return nil
}
