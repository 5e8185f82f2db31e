package repositories

import "errors"

var (
	// ErrNotFound is returned when no document matches a query.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a write violates a unique index.
	// Callers resolve it with the reconciler's retry path rather than
	// surfacing it.
	ErrDuplicateKey = errors.New("duplicate key")
)
