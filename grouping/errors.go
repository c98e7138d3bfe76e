package grouping

import "errors"

var (
	// ErrLengthMismatch indicates paired label/value slices of different lengths.
	ErrLengthMismatch = errors.New("grouping: labels and values must have the same length")
)
