package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrUnknownTool is returned by Call when no tool matches the given name.
var ErrUnknownTool = errors.New("unknown tool")

// ErrInvalidArguments is returned by Call when the arguments cannot be
// decoded into the tool's input type.
var ErrInvalidArguments = errors.New("invalid tool arguments")

// ToolDef describes a registered tool in the shape tools/list expects.
type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// ToolHandler executes a tool against raw JSON arguments and returns the
// result as text.
type ToolHandler func(ctx context.Context, args json.RawMessage) (string, error)

type registeredTool struct {
	def     ToolDef
	handler ToolHandler
}

// Registry holds the tool definitions and handlers shared with the HTTP
// transport. The go-sdk server keeps its own registration internally; this
// one exists so other transports can list and invoke the same tools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]registeredTool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]registeredTool)}
}

func (r *Registry) add(def ToolDef, handler ToolHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[def.Name] = registeredTool{def: def, handler: handler}
}

// Tools returns all tool definitions sorted by name.
func (r *Registry) Tools() []ToolDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]ToolDef, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Call invokes the named tool with raw JSON arguments.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (string, error) {
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool.handler(ctx, args)
}

// register adds a typed tool to both the go-sdk server and the registry.
// The registry side wraps the handler so raw JSON arguments decode into In
// and the output renders as indented JSON text. Schema derivation failures
// are programmer errors and panic, matching mcp.AddTool.
func register[In, Out any](server *mcp.Server, reg *Registry, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(server, tool, handler)

	schema, err := jsonschema.For[In](nil)
	if err != nil {
		panic(fmt.Sprintf("deriving input schema for %s: %v", tool.Name, err))
	}
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("encoding input schema for %s: %v", tool.Name, err))
	}

	def := ToolDef{
		Name:        tool.Name,
		Description: tool.Description,
		InputSchema: schemaJSON,
	}
	reg.add(def, func(ctx context.Context, args json.RawMessage) (string, error) {
		var in In
		if len(args) > 0 {
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
			}
		}
		_, out, err := handler(ctx, &mcp.CallToolRequest{}, in)
		if err != nil {
			return "", err
		}
		text, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding result: %w", err)
		}
		return string(text), nil
	})
}
