package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"rooms-dashboard/models"
	"rooms-dashboard/pkg/backend"
	"rooms-dashboard/pkg/session"
)

func TestFetchScopesEndpointByRole(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]models.Reservation{})
	}))
	defer srv.Close()

	s := NewReservationService(backend.NewClient(srv.URL))

	admin := &session.Session{Role: "ADMIN", Token: "tok"}
	if _, err := s.Fetch(context.Background(), admin); err != nil {
		t.Fatalf("Fetch(admin) error: %v", err)
	}
	if gotPath != "/api/reservations" {
		t.Errorf("admin path = %q", gotPath)
	}

	user := &session.Session{Role: "USER", Token: "tok"}
	if _, err := s.Fetch(context.Background(), user); err != nil {
		t.Fatalf("Fetch(user) error: %v", err)
	}
	if gotPath != "/api/reservations/reservasusuario" {
		t.Errorf("user path = %q", gotPath)
	}

	// No session at all degrades to the per-user endpoint, unauthenticated.
	if _, err := s.Fetch(context.Background(), nil); err != nil {
		t.Fatalf("Fetch(nil) error: %v", err)
	}
	if gotPath != "/api/reservations/reservasusuario" {
		t.Errorf("anonymous path = %q", gotPath)
	}
}

func TestCreateRequiresAllFields(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer srv.Close()

	s := NewReservationService(backend.NewClient(srv.URL))
	inicio := time.Now().UTC().Format(time.RFC3339)
	fin := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)

	cases := []models.Reservation{
		{RoomID: 0, FechaHoraInicio: inicio, FechaHoraFin: fin},
		{RoomID: 1, FechaHoraInicio: "", FechaHoraFin: fin},
		{RoomID: 1, FechaHoraInicio: inicio, FechaHoraFin: ""},
	}
	for _, res := range cases {
		err := s.Create(context.Background(), "tok", res)
		if err == nil {
			t.Fatal("expected validation error")
		}
		var apiErr *backend.Error
		if !errors.As(err, &apiErr) || apiErr.Kind != backend.ErrValidation {
			t.Errorf("error = %v, want validation kind", err)
		}
	}

	if n := atomic.LoadInt64(&requests); n != 0 {
		t.Errorf("validation failures issued %d network requests, want 0", n)
	}

	if err := s.Create(context.Background(), "tok", models.Reservation{RoomID: 1, FechaHoraInicio: inicio, FechaHoraFin: fin}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if n := atomic.LoadInt64(&requests); n != 1 {
		t.Errorf("valid create issued %d requests, want 1", n)
	}
}

func TestFilterReservations(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Nombre: "Sala Norte"},
		{ID: 2, Nombre: "Auditorio"},
	}
	reservations := []models.Reservation{
		{ID: 10, RoomID: 1, Email: "ana@example.com"},
		{ID: 11, RoomID: 2, Email: "bruno@example.com"},
		{ID: 12, RoomID: 2, Email: "ana@example.com"},
	}

	if got := FilterReservations(reservations, rooms, ""); len(got) != 3 {
		t.Errorf("empty query matched %d, want all 3", len(got))
	}
	if got := FilterReservations(reservations, rooms, "ANA"); len(got) != 2 {
		t.Errorf("email query matched %d, want 2", len(got))
	}
	if got := FilterReservations(reservations, rooms, "auditorio"); len(got) != 2 {
		t.Errorf("room-name query matched %d, want 2", len(got))
	}
	if got := FilterReservations(reservations, rooms, "norte"); len(got) != 1 || got[0].ID != 10 {
		t.Errorf("room-name query = %+v", got)
	}
	if got := FilterReservations(reservations, rooms, "nada"); got != nil {
		t.Errorf("no-match query = %+v, want nil", got)
	}
}
