package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"rooms-dashboard/models"
)

func (c *Client) ListRooms(ctx context.Context, token string) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.do(ctx, http.MethodGet, "/api/rooms", token, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) CreateRoom(ctx context.Context, token string, room models.Room) error {
	return c.do(ctx, http.MethodPost, "/api/rooms", token, room, nil)
}

func (c *Client) UpdateRoom(ctx context.Context, token string, room models.Room) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/rooms/%d", room.ID), token, room, nil)
}

func (c *Client) DeleteRoom(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/rooms/%d", id), token, nil, nil)
}

// SetRoomEstado flips availability through the targeted estado sub-route.
func (c *Client) SetRoomEstado(ctx context.Context, token string, id int64, estado string) error {
	path := fmt.Sprintf("/api/rooms/%d/estado?estado=%s", id, url.QueryEscape(estado))
	return c.do(ctx, http.MethodPut, path, token, nil, nil)
}
