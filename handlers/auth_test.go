package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rooms-dashboard/config"
	"rooms-dashboard/pkg/flash"
	"rooms-dashboard/pkg/session"
)

func TestLogoutClearsSession(t *testing.T) {
	store := session.NewMemoryStore()
	sess := session.Session{
		ID:        "sid-logout",
		Token:     "tok",
		Role:      "USER",
		Email:     "user@test.com",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := store.Put(sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	cfg := config.SessionConfig{TTL: time.Hour, CookieName: "dashboard_session"}
	h := NewAuthHandler(nil, flash.NewStore(), nil, store, cfg)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: sess.ID})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/" {
		t.Errorf("redirect = %q, want /", got)
	}

	if _, err := store.Get(sess.ID); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("session still in store after logout: %v", err)
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.CookieName && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie was not expired on the response")
	}
}

func TestLogoutWithoutCookie(t *testing.T) {
	cfg := config.SessionConfig{TTL: time.Hour, CookieName: "dashboard_session"}
	h := NewAuthHandler(nil, flash.NewStore(), nil, session.NewMemoryStore(), cfg)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
}
