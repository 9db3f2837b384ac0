package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSSE_SendsEndpointEvent(t *testing.T) {
	srv, _ := newTestServer(t, "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // the handler writes the endpoint event, then sees the closed context

	req := httptest.NewRequest(http.MethodGet, "/sse", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	srv.handleSSE(rec, req)

	if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "event: endpoint\ndata: /mcp\n\n") {
		t.Errorf("body = %q, want endpoint event pointing at /mcp", body)
	}
}

func TestSSE_PostNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/sse", nil)
	rec := httptest.NewRecorder()
	srv.handleSSE(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestTokenStore(t *testing.T) {
	store := NewTokenStore()

	token := store.Mint()
	if token == "" {
		t.Fatal("Mint returned empty token")
	}
	if !store.Valid(token) {
		t.Error("minted token should be valid")
	}
	if store.Valid("other") {
		t.Error("unknown token should be invalid")
	}
	if store.Count() != 1 {
		t.Errorf("Count() = %d, want 1", store.Count())
	}

	store.Invalidate(token)
	if store.Valid(token) {
		t.Error("invalidated token should be rejected")
	}
	if store.Count() != 0 {
		t.Errorf("Count() = %d, want 0", store.Count())
	}
}
