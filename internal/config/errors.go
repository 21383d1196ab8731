package config

import "errors"

var (
	// ErrNoBaseURL is returned when no remote gateway address was provided
	// by any configuration source.
	ErrNoBaseURL = errors.New("remote gateway base URL is not set")

	// ErrNoDSN is returned when no local cache database path was provided
	// by any configuration source.
	ErrNoDSN = errors.New("local cache database path is not set")
)
