package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the dashboard displays about a logged-in user. It comes
// from the backend token's payload; the signature is verified by the backend
// on every API call, not here.
type Identity struct {
	Role  string
	Email string
}

const defaultRole = "USER"

// DecodeToken extracts the role and subject email from a backend-issued
// bearer token without verifying its signature. Malformed tokens return an
// error instead of panicking on a bad segment.
func DecodeToken(raw string) (Identity, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return Identity{}, fmt.Errorf("malformed token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("malformed token: unexpected claims type")
	}

	id := Identity{Role: defaultRole}
	if rol, ok := claims["rol"].(string); ok && rol != "" {
		id.Role = rol
	} else if role, ok := claims["role"].(string); ok && role != "" {
		id.Role = role
	}

	if sub, err := claims.GetSubject(); err == nil {
		id.Email = sub
	}
	return id, nil
}
