// Package flash holds the transient success/error/info messages a page
// shows after an action. A message lives for a fixed 3-second window; a new
// message inside that window replaces the old one and restarts the window.
package flash

import (
	"sync"
	"time"
)

const Window = 3 * time.Second

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

type Message struct {
	Kind Kind
	Text string
}

type entry struct {
	msg     Message
	expires time.Time
}

type Store struct {
	mu      sync.Mutex
	items   map[string]entry
	window  time.Duration
	nowFunc func() time.Time
}

func NewStore() *Store {
	return &Store{
		items:   make(map[string]entry),
		window:  Window,
		nowFunc: time.Now,
	}
}

// Set replaces any pending message for the key and restarts its window.
func (s *Store) Set(key string, kind Kind, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = entry{
		msg:     Message{Kind: kind, Text: text},
		expires: s.nowFunc().Add(s.window),
	}
}

// Get returns the pending message for the key, if its window is still open.
func (s *Store) Get(key string) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		return Message{}, false
	}
	if s.nowFunc().After(e.expires) {
		delete(s.items, key)
		return Message{}, false
	}
	return e.msg, true
}

func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}
