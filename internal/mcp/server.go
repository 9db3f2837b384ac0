// Package mcp exposes Todoist operations as Model Context Protocol tools.
// Every tool is registered twice: on the go-sdk server that drives the stdio
// transport, and in a Registry that the HTTP transport reads for tools/list
// and tools/call.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cloudrumbles/todoist-mcp/internal/todoist"
)

// ServerName is the implementation name reported during MCP initialization.
const ServerName = "todoist-mcp"

// NewServer creates an MCP server with all Todoist tools registered and
// returns it together with the registry the HTTP transport consumes.
func NewServer(version string, client *todoist.Client) (*mcp.Server, *Registry) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)
	registry := NewRegistry()
	registerTaskTools(server, registry, client)
	registerProjectTools(server, registry, client)
	registerSectionTools(server, registry, client)
	registerLabelTools(server, registry, client)
	registerCommentTools(server, registry, client)
	return server, registry
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// writeAnnotations returns annotations for tools that create or update
// Todoist resources without destroying anything.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// destructiveAnnotations returns annotations for tools that delete resources.
func destructiveAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(true),
	}
}
