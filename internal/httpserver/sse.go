package httpserver

import (
	"fmt"
	"net/http"
	"time"
)

// keepaliveInterval is how often the SSE channel emits a comment so proxies
// and clients keep the connection open.
const keepaliveInterval = 25 * time.Second

// handleSSE serves the legacy SSE channel. It announces the JSON-RPC POST
// endpoint, then emits keepalive comments until the client disconnects.
// JSON-RPC responses always travel on the POST response, never this stream.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET, OPTIONS")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: endpoint\ndata: /mcp\n\n")
	flusher.Flush()

	s.logger.Info("SSE client connected", "remote", r.RemoteAddr)

	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE client disconnected", "remote", r.RemoteAddr)
			return
		case <-ticker.C:
			fmt.Fprintf(w, ": keepalive\n\n")
			flusher.Flush()
		}
	}
}
