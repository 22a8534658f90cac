package domain

import "errors"

// Error kinds. Services attach user-facing messages with E; the HTTP
// boundary matches kinds with errors.Is to pick a status code and puts the
// message into the response envelope.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrRemote     = errors.New("remote call failed")
)

// E builds a user-facing error of the given kind. Error() returns exactly
// the message shown to clients.
func E(kind error, message string) error {
	return &userError{kind: kind, message: message}
}

type userError struct {
	kind    error
	message string
}

func (e *userError) Error() string { return e.message }
func (e *userError) Unwrap() error { return e.kind }
