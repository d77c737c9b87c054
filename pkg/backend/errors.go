package backend

import "fmt"

type ErrorKind string

const (
	// ErrTransport covers network failures before any HTTP status exists.
	ErrTransport ErrorKind = "TRANSPORT"
	// ErrAPI covers non-2xx responses from the backend.
	ErrAPI ErrorKind = "API"
	// ErrAuth covers 401/403 responses.
	ErrAuth ErrorKind = "AUTH"
	// ErrValidation covers required-field checks done before any request.
	ErrValidation ErrorKind = "VALIDATION"
)

// Error carries the human-readable message the dashboard shows as a flash,
// plus the category and HTTP status for callers that care.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ValidationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

func transportError(err error) *Error {
	return &Error{
		Kind:    ErrTransport,
		Message: "No se pudo conectar con el servidor",
		Err:     fmt.Errorf("backend request: %w", err),
	}
}
