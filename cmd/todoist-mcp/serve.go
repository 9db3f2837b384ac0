package main

import (
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/cloudrumbles/todoist-mcp/internal/config"
	"github.com/cloudrumbles/todoist-mcp/internal/mcp"
	"github.com/cloudrumbles/todoist-mcp/internal/output"
	"github.com/cloudrumbles/todoist-mcp/internal/todoist"
)

// newServeCmd creates the serve command that runs the MCP server over stdio.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: `Run the MCP server over stdio for local agents.

Add to your MCP client configuration:

  {
    "mcpServers": {
      "todoist": {
        "command": "todoist-mcp",
        "args": ["serve"],
        "env": {
          "TODOIST_API_TOKEN": "your-token"
        }
      }
    }
  }

The server reads JSON-RPC requests from stdin and writes responses to
stdout, so nothing else may print to stdout while it runs.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return output.NewSystemErrorWithCause("loading configuration failed", err)
	}
	if cfg.APIToken == "" {
		return output.NewUserError("TODOIST_API_TOKEN is not set. Get a token at https://todoist.com/app/settings/integrations/developer")
	}

	client := todoist.NewClient(cfg.APIToken, cfg.BaseURL)
	server, _ := mcp.NewServer(buildVersion(), client)

	return server.Run(cmd.Context(), &sdk.StdioTransport{})
}
