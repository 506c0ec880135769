package chromosome

import "errors"

var (
	// ErrInvalidSizes indicates a Sizes value that cannot produce a layout.
	ErrInvalidSizes = errors.New("chromosome: invalid sizes")

	// ErrInvalidChromosome indicates a genome of the wrong length or with a
	// gene outside its declared range.
	ErrInvalidChromosome = errors.New("chromosome: invalid chromosome")
)
