package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudrumbles/todoist-mcp/internal/config"
	"github.com/cloudrumbles/todoist-mcp/internal/httpserver"
	"github.com/cloudrumbles/todoist-mcp/internal/mcp"
	"github.com/cloudrumbles/todoist-mcp/internal/output"
	"github.com/cloudrumbles/todoist-mcp/internal/todoist"
)

const shutdownTimeout = 5 * time.Second

// newServeHTTPCmd creates the serve-http command that runs the HTTP transport.
func newServeHTTPCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve-http",
		Short: "Run the MCP server over HTTP",
		Long: `Run the MCP server over plain HTTP for remote clients.

Endpoints:
  POST /mcp        JSON-RPC 2.0 (initialize, tools/list, tools/call, ...)
  GET  /sse        legacy SSE channel pointing clients at /mcp
  GET  /health     liveness probe
  /.well-known/... OAuth discovery documents

Set TODOIST_MCP_TOKEN to require bearer auth on /mcp and /sse. Without
it the endpoints are open, which is only suitable behind a trusted
proxy.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeHTTP(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to TODOIST_MCP_ADDR or :8080)")

	return cmd
}

func runServeHTTP(cmd *cobra.Command, addr string) error {
	cfg, err := config.Load()
	if err != nil {
		return output.NewSystemErrorWithCause("loading configuration failed", err)
	}
	if cfg.APIToken == "" {
		return output.NewUserError("TODOIST_API_TOKEN is not set. Get a token at https://todoist.com/app/settings/integrations/developer")
	}
	if addr == "" {
		addr = cfg.Addr
	}

	client := todoist.NewClient(cfg.APIToken, cfg.BaseURL)
	_, registry := mcp.NewServer(buildVersion(), client)

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	srv, err := httpserver.NewServer(httpserver.Config{
		Registry:    registry,
		Version:     buildVersion(),
		Logger:      logger,
		StaticToken: cfg.StaticToken,
	})
	if err != nil {
		return output.NewSystemErrorWithCause("building HTTP server failed", err)
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", "addr", addr, "auth", cfg.StaticToken != "")
	if cfg.StaticToken == "" {
		logger.Warn("TODOIST_MCP_TOKEN is not set, endpoints are unauthenticated")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return output.NewSystemErrorWithCause(fmt.Sprintf("listening on %s failed", addr), err)
		}
		return nil
	case <-cmd.Context().Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return output.NewSystemErrorWithCause("shutting down failed", err)
		}
		logger.Info("shut down cleanly")
		return nil
	}
}
