package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a lookup expected to match one user
	// row produces an empty result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUserNotReturned is returned when an insert succeeds but the remote
	// data API does not echo the inserted row back.
	ErrUserNotReturned = errors.New("inserted user was not returned")

	// ErrInvalidObjectKey is returned for empty object keys.
	ErrInvalidObjectKey = errors.New("invalid object key")
)
