package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// The OAuth endpoints exist only to satisfy MCP client discovery. Every
// request is auto-approved and every token is a fake; real authorization is
// out of scope for this shim.

// registerOAuthRoutes adds the discovery and token endpoints to the mux.
func (s *Server) registerOAuthRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/.well-known/oauth-authorization-server", s.handleAuthServerMetadata)
	mux.HandleFunc("/.well-known/oauth-protected-resource", s.handleProtectedResourceMetadata)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/authorize", s.handleAuthorize)
	mux.HandleFunc("/token", s.handleToken)
}

// issuer reconstructs the external base URL from the request.
func issuer(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (s *Server) handleAuthServerMetadata(w http.ResponseWriter, r *http.Request) {
	base := issuer(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"issuer":                                base,
		"authorization_endpoint":                base + "/authorize",
		"token_endpoint":                        base + "/token",
		"registration_endpoint":                 base + "/register",
		"response_types_supported":              []string{"code"},
		"grant_types_supported":                 []string{"authorization_code", "refresh_token"},
		"code_challenge_methods_supported":      []string{"S256"},
		"token_endpoint_auth_methods_supported": []string{"none", "client_secret_post"},
	})
}

func (s *Server) handleProtectedResourceMetadata(w http.ResponseWriter, r *http.Request) {
	base := issuer(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"resource":              base,
		"authorization_servers": []string{base},
		"bearer_methods_supported": []string{
			"header",
		},
	})
}

// clientRegistration is the subset of RFC 7591 we echo back.
type clientRegistration struct {
	ClientName   string   `json:"client_name,omitempty"`
	RedirectURIs []string `json:"redirect_uris,omitempty"`
}

// handleRegister implements dynamic client registration. Anything with a
// well-formed JSON body is accepted.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var reg clientRegistration
	if len(body) > 0 {
		if err := json.Unmarshal(body, &reg); err != nil {
			http.Error(w, "Bad Request: invalid JSON", http.StatusBadRequest)
			return
		}
	}

	clientID := uuid.New().String()
	s.logger.Info("registered OAuth client", "client_id", clientID, "client_name", reg.ClientName)

	writeJSON(w, http.StatusCreated, map[string]any{
		"client_id":                  clientID,
		"client_secret":              uuid.New().String(),
		"client_id_issued_at":        time.Now().Unix(),
		"client_name":                reg.ClientName,
		"redirect_uris":              reg.RedirectURIs,
		"token_endpoint_auth_method": "client_secret_post",
	})
}

// handleAuthorize auto-approves every authorization request.
func (s *Server) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	redirectURI := r.URL.Query().Get("redirect_uri")
	if redirectURI == "" {
		http.Error(w, "Bad Request: redirect_uri is required", http.StatusBadRequest)
		return
	}
	target, err := url.Parse(redirectURI)
	if err != nil {
		http.Error(w, "Bad Request: invalid redirect_uri", http.StatusBadRequest)
		return
	}

	code := uuid.New().String()
	s.codesMu.Lock()
	s.codes[code] = time.Now()
	s.codesMu.Unlock()

	query := target.Query()
	query.Set("code", code)
	if state := r.URL.Query().Get("state"); state != "" {
		query.Set("state", state)
	}
	target.RawQuery = query.Encode()

	s.logger.Info("auto-approved authorization", "redirect_uri", redirectURI)
	http.Redirect(w, r, target.String(), http.StatusFound)
}

// handleToken mints a fake bearer token for any grant. The access token is
// recorded so bearer auth on /mcp and /sse accepts it.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	accessToken := s.tokens.Mint()
	s.logger.Info("minted access token", "grant_type", r.PostFormValue("grant_type"))

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  accessToken,
		"token_type":    "Bearer",
		"expires_in":    3600,
		"refresh_token": uuid.New().String(),
	})
}
