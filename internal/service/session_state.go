package service

import (
	"sync"

	"storefront/internal/domain"
)

// SessionState mantiene en memoria el perfil del usuario actual.
// El mutex solo protege la memoria: dos operaciones concurrentes no se coordinan y gana la ultima respuesta.
type SessionState struct {
	mu   sync.RWMutex
	user *domain.User
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

// User devuelve una copia del perfil o nil si no hay sesion.
func (s *SessionState) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := s.user.Clone()
	return &u
}

func (s *SessionState) SetUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user.Clone()
	s.user = &u
}

// Merge aplica una actualizacion parcial; sin perfil no hace nada.
func (s *SessionState) Merge(upd domain.UserUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	merged := s.user.Apply(upd)
	s.user = &merged
	return true
}

func (s *SessionState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
