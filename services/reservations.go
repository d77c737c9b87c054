package services

import (
	"context"
	"strings"

	"rooms-dashboard/models"
	"rooms-dashboard/pkg/backend"
	"rooms-dashboard/pkg/session"
)

// ReservationService wraps the reservation endpoints. Lists are re-fetched
// on every page render, so no snapshot is kept: the scope of the list
// depends on who is asking.
type ReservationService struct {
	client *backend.Client
}

func NewReservationService(client *backend.Client) *ReservationService {
	return &ReservationService{client: client}
}

// Fetch lists reservations scoped by the session's role.
func (s *ReservationService) Fetch(ctx context.Context, sess *session.Session) ([]models.Reservation, error) {
	return s.client.ListReservations(ctx, sess.BearerToken(), sess.IsAdmin())
}

// Create requires a room and both timestamps before any request is made.
func (s *ReservationService) Create(ctx context.Context, token string, res models.Reservation) error {
	if res.RoomID == 0 || res.FechaHoraInicio == "" || res.FechaHoraFin == "" {
		return backend.ValidationError("Todos los campos son obligatorios")
	}
	return s.client.CreateReservation(ctx, token, res)
}

func (s *ReservationService) Edit(ctx context.Context, token string, res models.Reservation) error {
	return s.client.UpdateReservation(ctx, token, res)
}

func (s *ReservationService) Delete(ctx context.Context, token string, id int64) error {
	return s.client.DeleteReservation(ctx, token, id)
}

// ChangeStatus requests the transition to the target state; the backend
// decides whether the transition is legal.
func (s *ReservationService) ChangeStatus(ctx context.Context, token string, id int64, target string) error {
	return s.client.ChangeReservationStatus(ctx, token, id, target)
}

// FilterReservations matches the query against the reserving user's email
// or the reserved room's name, case-insensitively.
func FilterReservations(reservations []models.Reservation, rooms []models.Room, query string) []models.Reservation {
	if query == "" {
		return reservations
	}

	names := make(map[int64]string, len(rooms))
	for _, r := range rooms {
		names[r.ID] = strings.ToLower(r.Nombre)
	}

	q := strings.ToLower(query)
	var out []models.Reservation
	for _, res := range reservations {
		if strings.Contains(strings.ToLower(res.Email), q) || strings.Contains(names[res.RoomID], q) {
			out = append(out, res)
		}
	}
	return out
}
