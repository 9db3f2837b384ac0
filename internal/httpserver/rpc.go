package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/cloudrumbles/todoist-mcp/internal/mcp"
)

// protocolVersion is the MCP protocol revision this shim speaks.
const protocolVersion = "2024-11-05"

// maxRequestBodySize caps JSON-RPC request bodies at 1 MiB.
const maxRequestBodySize = 1 << 20

// JSON-RPC 2.0 types

type jsonRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *jsonRPCError   `json:"error,omitempty"`
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Standard JSON-RPC error codes
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// MCP wire types

type callToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type callToolResult struct {
	Content []contentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// handleMCP processes a single JSON-RPC message sent via HTTP POST.
func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize+1))
	if err != nil {
		s.sendError(w, nil, codeParseError, "failed to read request body", nil)
		return
	}
	if int64(len(body)) > maxRequestBodySize {
		s.sendError(w, nil, codeInvalidRequest, "request body too large", nil)
		return
	}

	var req jsonRPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.sendError(w, nil, codeParseError, "invalid JSON", nil)
		return
	}
	if req.JSONRPC != "2.0" {
		s.sendError(w, req.ID, codeInvalidRequest, "invalid JSON-RPC version", nil)
		return
	}

	// Requests without an id are notifications: accept and return 202.
	if len(req.ID) == 0 || string(req.ID) == "null" {
		if !strings.HasPrefix(req.Method, "notifications/") {
			s.logger.Warn("notification for non-notification method", "method", req.Method)
		}
		w.WriteHeader(http.StatusAccepted)
		return
	}

	s.logger.Debug("JSON-RPC request", "method", req.Method)

	switch req.Method {
	case "initialize":
		s.handleInitialize(w, req)
	case "ping":
		s.sendResult(w, req.ID, map[string]any{})
	case "tools/list":
		s.handleToolsList(w, req)
	case "tools/call":
		s.handleToolsCall(w, r, req)
	case "resources/list":
		s.sendResult(w, req.ID, map[string]any{"resources": []any{}})
	case "prompts/list":
		s.sendResult(w, req.ID, map[string]any{"prompts": []any{}})
	default:
		s.sendError(w, req.ID, codeMethodNotFound, "method not found", nil)
	}
}

// handleInitialize answers the MCP handshake. No session state is kept; the
// transport is a best-effort shim.
func (s *Server) handleInitialize(w http.ResponseWriter, req jsonRPCRequest) {
	s.sendResult(w, req.ID, map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    mcp.ServerName,
			"version": s.version,
		},
	})
}

// handleToolsList returns all registered tool definitions.
func (s *Server) handleToolsList(w http.ResponseWriter, req jsonRPCRequest) {
	defs := s.registry.Tools()
	s.logger.Debug("tools/list", "count", len(defs))
	s.sendResult(w, req.ID, map[string]any{"tools": defs})
}

// handleToolsCall invokes a registered tool. Unknown tools and undecodable
// arguments are protocol faults (-32602); a failing handler is reported as an
// isError result because vendor errors are data, not protocol faults.
func (s *Server) handleToolsCall(w http.ResponseWriter, r *http.Request, req jsonRPCRequest) {
	var params callToolParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.sendError(w, req.ID, codeInvalidParams, "invalid params", nil)
			return
		}
	}
	if params.Name == "" {
		s.sendError(w, req.ID, codeInvalidParams, "tool name is required", nil)
		return
	}

	text, err := s.registry.Call(r.Context(), params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, mcp.ErrUnknownTool) || errors.Is(err, mcp.ErrInvalidArguments) {
			s.sendError(w, req.ID, codeInvalidParams, err.Error(), nil)
			return
		}
		s.logger.Warn("tool call failed", "tool", params.Name, "error", err)
		s.sendResult(w, req.ID, callToolResult{
			Content: []contentBlock{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
		return
	}

	s.logger.Debug("tools/call complete", "tool", params.Name)
	s.sendResult(w, req.ID, callToolResult{
		Content: []contentBlock{{Type: "text", Text: text}},
	})
}

// sendResult writes a successful JSON-RPC response.
func (s *Server) sendResult(w http.ResponseWriter, id json.RawMessage, result any) {
	resp := jsonRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("failed to encode JSON-RPC response", "error", err)
	}
}

// sendError writes a JSON-RPC error response.
func (s *Server) sendError(w http.ResponseWriter, id json.RawMessage, code int, message string, data any) {
	resp := jsonRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &jsonRPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("failed to encode JSON-RPC error response", "error", err)
	}
}
