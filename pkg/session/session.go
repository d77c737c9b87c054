package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Session is the server-side copy of a logged-in user's backend credentials:
// the bearer token issued by the reservations backend plus the role and
// email decoded from it.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin is the single capability check for administrative controls.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == "ADMIN"
}

// BearerToken returns the backend token, or "" for an absent session so
// requests degrade to unauthenticated.
func (s *Session) BearerToken() string {
	if s == nil {
		return ""
	}
	return s.Token
}

type Store interface {
	Get(id string) (Session, error)
	Put(sess Session) error
	Delete(id string) error
}

func NewID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// MemoryStore is the default backend when neither Redis nor Postgres is
// configured. Sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	nowFunc  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		nowFunc:  time.Now,
	}
}

func (s *MemoryStore) Get(id string) (Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.nowFunc().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Put(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
