package backend

import (
	"context"
	"fmt"
	"net/http"

	"rooms-dashboard/models"
)

// ListReservations picks the endpoint by role: administrators see every
// reservation, everyone else only their own. "Own" is resolved server-side
// from the bearer token.
func (c *Client) ListReservations(ctx context.Context, token string, admin bool) ([]models.Reservation, error) {
	path := "/api/reservations/reservasusuario"
	if admin {
		path = "/api/reservations"
	}

	var reservations []models.Reservation
	if err := c.do(ctx, http.MethodGet, path, token, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) CreateReservation(ctx context.Context, token string, res models.Reservation) error {
	return c.do(ctx, http.MethodPost, "/api/reservations", token, res, nil)
}

func (c *Client) UpdateReservation(ctx context.Context, token string, res models.Reservation) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/reservations/%d", res.ID), token, res, nil)
}

func (c *Client) DeleteReservation(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", id), token, nil, nil)
}

// ChangeReservationStatus maps the target state to its sub-route: CONFIRMED
// goes to confirm, anything else to cancel. The PUT carries no body.
func (c *Client) ChangeReservationStatus(ctx context.Context, token string, id int64, target string) error {
	endpoint := "cancel"
	if target == models.ReservationConfirmed {
		endpoint = "confirm"
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/reservations/%d/%s", id, endpoint), token, nil, nil)
}
