package table

import "errors"

// Sentinel errors for table operations. Callers branch with errors.Is.
var (
	// ErrBadSize indicates a negative length or a negative value bound.
	ErrBadSize = errors.New("table: invalid size")

	// ErrKeyOutOfRange indicates a lookup key outside [0, Len()).
	ErrKeyOutOfRange = errors.New("table: key out of range")

	// ErrLengthMismatch indicates Set received a slice whose length differs from Len().
	ErrLengthMismatch = errors.New("table: length mismatch")

	// ErrValueOutOfRange indicates Set received a value outside [0, Max()].
	ErrValueOutOfRange = errors.New("table: value out of range")
)
