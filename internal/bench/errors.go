package bench

import "errors"

var (
	ErrInvalidInput       = errors.New("bench: invalid input")
	ErrPointCountMismatch = errors.New("bench: point count mismatch")
	ErrPointMismatch      = errors.New("bench: retrieved point does not match")
)
