package tokenstore

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultMaxAge es la vida del token persistido (7 dias).
const DefaultMaxAge = 7 * 24 * time.Hour

// TokenStore persiste el bearer token de la sesion. Un string vacio significa "sin token".
// No se valida el contenido del token.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// MemoryStore guarda el token en memoria durante la vida del proceso.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	expires time.Time
	maxAge  time.Duration
	now     func() time.Time
}

func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &MemoryStore{
		maxAge: maxAge,
		now:    time.Now,
	}
}

func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", nil
	}
	if s.now().After(s.expires) {
		s.token = ""
		return "", nil
	}
	return s.token, nil
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
	s.expires = s.now().Add(s.maxAge)
	return nil
}

func (s *MemoryStore) ClearToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expires = time.Time{}
	return nil
}
