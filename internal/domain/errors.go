package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidState is returned by service functions when a business rule is
// violated (e.g. trip name mismatch, past-dated trip, duplicate enrollment,
// unparseable payment date, client still assigned to a trip).
// Handlers should map this to HTTP 400 Bad Request.
var ErrInvalidState = errors.New("invalid state")
