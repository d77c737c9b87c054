package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"rooms-dashboard/models"
	"rooms-dashboard/pkg/backend"
)

// RoomService owns the room list snapshot: fetches replace it wholesale,
// toggles and edits patch it in place, creates and deletes re-fetch it.
type RoomService struct {
	client *backend.Client

	mu    sync.RWMutex
	rooms []models.Room

	group singleflight.Group
}

func NewRoomService(client *backend.Client) *RoomService {
	return &RoomService{client: client}
}

// Fetch reloads the room list. Concurrent page loads share one backend call.
func (s *RoomService) Fetch(ctx context.Context, token string) ([]models.Room, error) {
	v, err, _ := s.group.Do("rooms", func() (interface{}, error) {
		return s.client.ListRooms(ctx, token)
	})
	if err != nil {
		return nil, err
	}

	rooms := v.([]models.Room)
	s.mu.Lock()
	s.rooms = rooms
	s.mu.Unlock()
	return s.Rooms(), nil
}

// Rooms returns a copy of the current snapshot.
func (s *RoomService) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Filter returns the snapshot entries whose nombre contains the query,
// case-insensitively. An empty query returns everything.
func (s *RoomService) Filter(query string) []models.Room {
	rooms := s.Rooms()
	if query == "" {
		return rooms
	}

	q := strings.ToLower(query)
	out := rooms[:0]
	for _, r := range rooms {
		if strings.Contains(strings.ToLower(r.Nombre), q) {
			out = append(out, r)
		}
	}
	return out
}

// Toggle flips a room between AVAILABLE and UNAVAILABLE and patches the
// snapshot entry on success. Returns the new estado.
func (s *RoomService) Toggle(ctx context.Context, token string, id int64, current string) (string, error) {
	nuevo := models.RoomAvailable
	if strings.EqualFold(current, models.RoomAvailable) {
		nuevo = models.RoomUnavailable
	}

	if err := s.client.SetRoomEstado(ctx, token, id, nuevo); err != nil {
		return "", err
	}

	s.mu.Lock()
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms[i].Estado = nuevo
			break
		}
	}
	s.mu.Unlock()
	return nuevo, nil
}

// Edit updates a room's fields, forcing it back to AVAILABLE, and patches
// the snapshot entry by id.
func (s *RoomService) Edit(ctx context.Context, token string, room models.Room, nombre, capacidad, ubicacion string) error {
	capacity, err := strconv.Atoi(capacidad)
	if err != nil {
		return backend.ValidationError("La capacidad debe ser un número")
	}

	updated := room
	updated.Nombre = nombre
	updated.Capacidad = capacity
	updated.Ubicacion = ubicacion
	updated.Estado = models.RoomAvailable

	if err := s.client.UpdateRoom(ctx, token, updated); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.rooms {
		if s.rooms[i].ID == room.ID {
			s.rooms[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *RoomService) Delete(ctx context.Context, token string, id int64) error {
	if err := s.client.DeleteRoom(ctx, token, id); err != nil {
		return err
	}
	_, err := s.Fetch(ctx, token)
	return err
}

// Create validates that every field is present before any request is made.
func (s *RoomService) Create(ctx context.Context, token string, nombre, capacidad, ubicacion string) error {
	if nombre == "" || capacidad == "" || ubicacion == "" {
		return backend.ValidationError("Todos los campos son obligatorios")
	}
	capacity, err := strconv.Atoi(capacidad)
	if err != nil {
		return backend.ValidationError("La capacidad debe ser un número")
	}

	room := models.Room{
		Nombre:    nombre,
		Capacidad: capacity,
		Ubicacion: ubicacion,
		Estado:    models.RoomAvailable,
	}
	if err := s.client.CreateRoom(ctx, token, room); err != nil {
		return err
	}

	_, err = s.Fetch(ctx, token)
	return err
}

// FindByID looks a room up in the snapshot, for edit forms.
func (s *RoomService) FindByID(id int64) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}
