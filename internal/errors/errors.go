package errors

import "errors"

// This package defines a centralized set of sentinel errors for the
// application. Services return these recognizable error values without
// coupling themselves to HTTP status codes; the API layer checks them with
// `errors.Is()` and maps them to the right responses.

var (
	// ErrValidation signifies that client input failed business-rule
	// validation. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized signifies that no usable credential accompanied the
	// request. Mapped to 401 Unauthorized.
	ErrUnauthorized = errors.New("no token provided")

	// ErrForbidden signifies that a credential was presented but did not
	// verify. Mapped to 403 Forbidden.
	ErrForbidden = errors.New("invalid token")

	// ErrProvider signifies a hard failure talking to the upstream
	// completion provider before any output was committed.
	// Mapped to 500 Internal Server Error.
	ErrProvider = errors.New("completion provider failure")

	// ErrResource signifies that the location path could not assemble its
	// result. The client always receives a deliberately generic message;
	// the original cause is logged only. Mapped to 500.
	ErrResource = errors.New("failed to process location-based request")
)
