package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized means the server rejected the bearer token. It is a
// session problem, not a domain error: callers tear the session down
// instead of retrying.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound means the addressed entity no longer exists server-side.
var ErrNotFound = errors.New("not found")

// Error carries a non-2xx response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Unwrap maps well-known statuses onto sentinel errors so callers can use
// errors.Is without inspecting codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	}
	return nil
}
