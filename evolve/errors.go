package evolve

import "errors"

var (
	// ErrBadConfig indicates an unusable Config; the wrapped message names the field.
	ErrBadConfig = errors.New("evolve: invalid config")

	// ErrEmptyGenome is returned when no gene ranges are supplied.
	ErrEmptyGenome = errors.New("evolve: empty genome")

	// ErrBadRange indicates a gene range with Min > Max.
	ErrBadRange = errors.New("evolve: gene range min exceeds max")

	// ErrNilFitness is returned when no fitness function is supplied.
	ErrNilFitness = errors.New("evolve: nil fitness function")
)
