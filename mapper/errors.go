package mapper

import "errors"

var (
	// ErrEmptyAlphabet indicates an InputMapper was requested over no symbols.
	ErrEmptyAlphabet = errors.New("mapper: alphabet is empty")

	// ErrBadDomain indicates a negative object, type or output count.
	ErrBadDomain = errors.New("mapper: domain size must be ≥ 0")

	// ErrKeyOutOfRange indicates Compute received a key outside the mapper's domain.
	ErrKeyOutOfRange = errors.New("mapper: key out of range")
)
