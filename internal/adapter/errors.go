package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the bearer token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned when the addressed conversation or file does
	// not exist on the server.
	ErrNotFound = errors.New("remote record not found")

	// ErrConflict is returned when the server reports a duplicate or
	// conflicting record.
	ErrConflict = errors.New("remote conflict")
)
