package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

func makeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	b, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return header + "." + payload + ".firma"
}

func TestDecodeToken(t *testing.T) {
	tests := []struct {
		name      string
		claims    map[string]interface{}
		wantRole  string
		wantEmail string
	}{
		{
			name:      "rol claim",
			claims:    map[string]interface{}{"rol": "ADMIN", "sub": "admin@example.com"},
			wantRole:  "ADMIN",
			wantEmail: "admin@example.com",
		},
		{
			name:      "role claim",
			claims:    map[string]interface{}{"role": "ADMIN", "sub": "admin@example.com"},
			wantRole:  "ADMIN",
			wantEmail: "admin@example.com",
		},
		{
			name:      "rol wins over role",
			claims:    map[string]interface{}{"rol": "USER", "role": "ADMIN", "sub": "u@example.com"},
			wantRole:  "USER",
			wantEmail: "u@example.com",
		},
		{
			name:      "missing role defaults to USER",
			claims:    map[string]interface{}{"sub": "u@example.com"},
			wantRole:  "USER",
			wantEmail: "u@example.com",
		},
		{
			name:     "missing sub leaves email empty",
			claims:   map[string]interface{}{"rol": "USER"},
			wantRole: "USER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := DecodeToken(makeToken(t, tt.claims))
			if err != nil {
				t.Fatalf("DecodeToken() error: %v", err)
			}
			if id.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", id.Role, tt.wantRole)
			}
			if id.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", id.Email, tt.wantEmail)
			}
		})
	}
}

func TestDecodeTokenMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"garbage",
		"one.two",
		"!!!.???.###",
		"a.b.c.d",
	} {
		if _, err := DecodeToken(raw); err == nil {
			t.Errorf("DecodeToken(%q) expected error, got nil", raw)
		}
	}
}
