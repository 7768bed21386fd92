package api

import "errors"

var (
	// ErrUnavailable covers network failures, timeouts and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the session token was missing, invalid or
	// expired (401). The session store tears down on this.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the session is valid but the role is not allowed
	// to perform the operation (403). Surfaced inline, no redirect.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound maps 404 responses.
	ErrNotFound = errors.New("not found")
)
