package funcbank

import "errors"

var (
	// ErrBadShape indicates a non-positive function count or depth, or a
	// negative maxInput or type count.
	ErrBadShape = errors.New("funcbank: invalid shape")

	// ErrTypeOutOfRange indicates Compute received a type outside [0, nTypes].
	ErrTypeOutOfRange = errors.New("funcbank: type out of range")
)
