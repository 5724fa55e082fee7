package adapter

import "errors"

// Errors returned by [ServerAdapter] implementations. Status errors carry the
// server's error message after a colon.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNoResponse is returned when the request never got an HTTP answer:
	// the server is down, unreachable or too slow.
	ErrNoResponse = errors.New("no response from server")

	ErrInvalidAddress = errors.New("invalid server address")
	ErrDecodeResponse = errors.New("cannot decode server response")
)
