// Package backend is the typed client for the external room-reservation
// REST API. Every page and service goes through it; there is exactly one
// place that builds requests, sets the bearer header and maps error bodies.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client over the shared platform defaults. No timeout is
// configured; requests run a single attempt with no retry.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// do performs one API call. A non-empty token becomes the Authorization
// header; an empty token degrades the request to unauthenticated. The
// response body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ %s %s failed: %v", method, path, err)
		return transportError(err)
	}
	defer resp.Body.Close()
	log.Printf("⏱️ %s %s completed in %v (%d)", method, path, time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.responseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// responseError turns a non-2xx response into a categorized error. The body
// message precedence follows the backend's conventions: a JSON "mensaje"
// field, then "error", then the raw text body, then a generic fallback.
func (c *Client) responseError(resp *http.Response) *Error {
	kind := ErrAPI
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		kind = ErrAuth
	}

	body, _ := io.ReadAll(resp.Body)
	return &Error{
		Kind:    kind,
		Status:  resp.StatusCode,
		Message: errorMessage(resp.StatusCode, body),
	}
}

func errorMessage(status int, body []byte) string {
	if json.Valid(body) {
		var payload struct {
			Mensaje string `json:"mensaje"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Mensaje != "" {
				return payload.Mensaje
			}
			if payload.Error != "" {
				return payload.Error
			}
		}
		return fmt.Sprintf("Error %d", status)
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("Error %d", status)
}
