package fold

import "errors"

var (
	// ErrBadObjects indicates a negative object count.
	ErrBadObjects = errors.New("fold: object count must be ≥ 0")

	// ErrObjectOutOfRange indicates a sequence element outside [0, nObjects].
	ErrObjectOutOfRange = errors.New("fold: object out of range")
)
