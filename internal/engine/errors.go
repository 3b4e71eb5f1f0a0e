package engine

import "errors"

// Errors returned by engine operations. A rejected call leaves engine
// state completely unchanged.
var (
	// ErrObjectNotFound indicates an id that is unknown, already
	// deleted, or the reserved 0 sentinel.
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidGeometry indicates a non-positive width or height.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidBatchState indicates mismatched begin/end batch calls.
	ErrInvalidBatchState = errors.New("invalid batch state")
)
