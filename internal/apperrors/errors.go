package apperrors

import "errors"

// Domain errors. Repositories and services translate storage-level
// failures into these; handlers map them onto HTTP status codes.
var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized covers missing, malformed, tampered and expired
	// bearer tokens uniformly.
	ErrUnauthorized = errors.New("invalid or expired token")

	// ErrTicketNotFound is returned both when a ticket does not exist and
	// when it exists but belongs to another user, so ticket existence is
	// never disclosed to non-owners.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrUpstream signals a completion provider failure. Retryable.
	ErrUpstream = errors.New("completion provider failure")
)
