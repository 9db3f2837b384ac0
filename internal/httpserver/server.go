// Package httpserver exposes the MCP tool registry over plain HTTP: a
// JSON-RPC endpoint, a health check, a legacy SSE channel, and the OAuth
// discovery stubs some MCP clients insist on before connecting.
package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cloudrumbles/todoist-mcp/internal/mcp"
)

// Config holds configuration for the HTTP transport.
type Config struct {
	Registry *mcp.Registry
	Version  string
	Logger   *slog.Logger
	// StaticToken, when set, locks /mcp and /sse behind bearer auth. Tokens
	// minted by the OAuth stub are accepted alongside it. Empty means open.
	StaticToken string
}

// Server adapts the tool registry to HTTP. It normalizes inbound requests
// into JSON-RPC objects and dispatches them to a fixed method table.
type Server struct {
	registry    *mcp.Registry
	version     string
	logger      *slog.Logger
	staticToken string
	tokens      *TokenStore

	// authorization codes handed out by the OAuth stub
	codesMu sync.Mutex
	codes   map[string]time.Time
}

// NewServer creates the HTTP transport for the given registry.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Registry == nil {
		return nil, errors.New("registry is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		registry:    cfg.Registry,
		version:     cfg.Version,
		logger:      logger,
		staticToken: cfg.StaticToken,
		tokens:      NewTokenStore(),
		codes:       make(map[string]time.Time),
	}, nil
}

// RegisterRoutes registers all transport endpoints on the given ServeMux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/mcp", s.withCORS(s.requireAuth(s.handleMCP)))
	mux.HandleFunc("/sse", s.withCORS(s.requireAuth(s.handleSSE)))
	s.registerOAuthRoutes(mux)
}

// Handler returns the complete HTTP handler for the transport.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return mux
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"server":  mcp.ServerName,
		"version": s.version,
	})
}

// withCORS allows cross-origin access and answers preflight requests.
// MCP clients running in browsers or Electron need this.
func (s *Server) withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next(w, r)
	}
}

// requireAuth enforces bearer auth when a static token is configured.
// Tokens minted by the OAuth stub are accepted too. With no static token the
// endpoint is open.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.staticToken == "" {
			next(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" {
			s.logger.Warn("rejected unauthenticated request", "path", r.URL.Path)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if token != s.staticToken && !s.tokens.Valid(token) {
			s.logger.Warn("rejected invalid token", "path", r.URL.Path)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// bearerToken extracts the token from an Authorization header, or "" if the
// header is missing or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
