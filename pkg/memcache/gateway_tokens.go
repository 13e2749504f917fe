package mem

import (
	"sync"
	"time"
)

// TokenStore caches short-lived gateway bearer tokens so the checkout path
// does not run a fresh OAuth exchange on every call.
type TokenStore interface {
	Set(key, token string, ttl time.Duration)

	// Get returns the token for key if not expired, else "".
	Get(key string) string
}

type entry struct {
	token     string
	expiresAt time.Time
}

type GatewayTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewGatewayTokens() *GatewayTokens {
	return &GatewayTokens{
		data: make(map[string]entry),
	}
}

func (s *GatewayTokens) Set(key, token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		token:     token,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *GatewayTokens) Get(key string) string {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return ""
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return ""
	}
	return e.token
}
