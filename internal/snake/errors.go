package snake

import "errors"

var (
	// ErrInvalidConfiguration is returned when the board size or initial
	// snake length is not a positive integer. Fatal to that construction
	// attempt; the caller must re-supply parameters.
	ErrInvalidConfiguration = errors.New("snake: invalid configuration")

	// ErrEmptyBody indicates a snake with no segments. The constructor
	// guarantees a non-empty body, so hitting this means an invariant was
	// broken elsewhere.
	ErrEmptyBody = errors.New("snake: empty body")
)
