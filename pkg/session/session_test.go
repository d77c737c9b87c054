package session

import (
	"testing"
	"time"
)

func TestMemoryStorePutGetDelete(t *testing.T) {
	s := NewMemoryStore()

	sess := Session{
		ID:        "sid1",
		Token:     "tok1",
		Role:      "ADMIN",
		Email:     "admin@example.com",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := s.Put(sess); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := s.Get("sid1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Token != "tok1" || got.Role != "ADMIN" || got.Email != "admin@example.com" {
		t.Errorf("unexpected session: %+v", got)
	}

	if err := s.Delete("sid1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get("sid1"); err != ErrNotFound {
		t.Errorf("Get() after delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.nowFunc = func() time.Time { return now }

	if err := s.Put(Session{ID: "sid1", Token: "tok1", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := s.Get("sid1"); err != ErrNotFound {
		t.Errorf("Get() after expiry = %v, want ErrNotFound", err)
	}
}

func TestSessionCapabilities(t *testing.T) {
	var nilSess *Session
	if nilSess.IsAdmin() {
		t.Error("nil session must not be admin")
	}
	if nilSess.BearerToken() != "" {
		t.Error("nil session must degrade to an empty token")
	}

	admin := &Session{Role: "ADMIN", Token: "tok"}
	if !admin.IsAdmin() {
		t.Error("ADMIN session should be admin")
	}
	if (&Session{Role: "USER"}).IsAdmin() {
		t.Error("USER session must not be admin")
	}
	if admin.BearerToken() != "tok" {
		t.Error("session should expose its token")
	}
}

func TestNewID(t *testing.T) {
	a, err := NewID()
	if err != nil {
		t.Fatalf("NewID() error: %v", err)
	}
	b, err := NewID()
	if err != nil {
		t.Fatalf("NewID() error: %v", err)
	}
	if len(a) != 64 {
		t.Errorf("id length = %d, want 64", len(a))
	}
	if a == b {
		t.Error("ids must be unique")
	}
}
