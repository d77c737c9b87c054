package backend

import (
	"context"
	"errors"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a bearer token. Invalid credentials get a
// fixed message regardless of what the backend put in the 401/403 body.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Kind == ErrAuth {
			apiErr.Message = "Usuario o contraseña incorrectos"
			return LoginResponse{}, apiErr
		}
		return LoginResponse{}, err
	}
	return out, nil
}

// Register creates a new user with the requested role.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/users", "", req, nil)
}
