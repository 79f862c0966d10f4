package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized matches StatusErrors for 401 and 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMissingField is returned when a 2xx body lacks its payload field.
	ErrMissingField = errors.New("response missing field")
)

// StatusError is a non-2xx response. Message is the backend's error message,
// or a generic "HTTP error, status=<code>" text.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

func genericStatusMessage(status int) string {
	return fmt.Sprintf("HTTP error, status=%d", status)
}

type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string {
	return fmt.Sprintf("response missing %q field", e.field)
}

func (e *missingFieldError) Unwrap() error { return ErrMissingField }
