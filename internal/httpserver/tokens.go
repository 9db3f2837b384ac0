package httpserver

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TokenStore holds access tokens minted by the OAuth stub. Everything is
// in-memory; tokens do not survive a restart.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token -> mint time
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]time.Time)}
}

// Mint generates and records a new access token.
func (s *TokenStore) Mint() string {
	token := uuid.New().String()
	s.mu.Lock()
	s.tokens[token] = time.Now()
	s.mu.Unlock()
	return token
}

// Valid reports whether the token was minted by this store.
func (s *TokenStore) Valid(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

// Invalidate removes a token from the store.
func (s *TokenStore) Invalidate(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// Count returns the number of active tokens.
func (s *TokenStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}
