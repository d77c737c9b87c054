package flash

import (
	"testing"
	"time"
)

func newTestStore(now *time.Time) *Store {
	s := NewStore()
	s.nowFunc = func() time.Time { return *now }
	return s
}

func TestSetAndGet(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := newTestStore(&now)

	s.Set("k", Success, "Sala creada exitosamente")

	msg, ok := s.Get("k")
	if !ok {
		t.Fatal("expected a pending message")
	}
	if msg.Kind != Success || msg.Text != "Sala creada exitosamente" {
		t.Errorf("unexpected message: %+v", msg)
	}

	if _, ok := s.Get("other"); ok {
		t.Error("expected no message for unknown key")
	}
}

func TestMessageExpiresAfterWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := newTestStore(&now)

	s.Set("k", Error, "Error al eliminar sala")

	now = now.Add(Window - time.Millisecond)
	if _, ok := s.Get("k"); !ok {
		t.Fatal("message should still be visible inside the window")
	}

	now = now.Add(2 * time.Millisecond)
	if _, ok := s.Get("k"); ok {
		t.Fatal("message should have expired after the window")
	}
}

func TestNewMessageRestartsWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := newTestStore(&now)

	s.Set("k", Error, "primero")
	now = now.Add(2 * time.Second)
	s.Set("k", Error, "segundo")

	// 2s after the second message: the first message's window is long past,
	// but the restart keeps the replacement alive.
	now = now.Add(2 * time.Second)
	msg, ok := s.Get("k")
	if !ok {
		t.Fatal("replacement message should still be visible")
	}
	if msg.Text != "segundo" {
		t.Errorf("message = %q, want %q", msg.Text, "segundo")
	}

	now = now.Add(2 * time.Second)
	if _, ok := s.Get("k"); ok {
		t.Fatal("replacement message should have expired")
	}
}

func TestClear(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := newTestStore(&now)

	s.Set("k", Info, "Sin permisos")
	s.Clear("k")
	if _, ok := s.Get("k"); ok {
		t.Fatal("cleared message should be gone")
	}
}
