package errors

import "errors"

// Sentinel errors shared by the service and API layers. Services wrap them
// with fmt.Errorf("%w: ...") and the API layer maps them to HTTP statuses with
// errors.Is, so neither side depends on the other's details.
//
// Generation failures are not listed here; they carry their own taxonomy
// (chart.GenerationError) and are mapped separately.

var (
	// ErrNotFound signifies that a requested generation record does not exist.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrInternal is a generic server-side failure that must not leak details.
	// Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
