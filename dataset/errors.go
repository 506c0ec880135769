package dataset

import "errors"

// ErrMalformedRecord is returned for rows with too few columns or a target
// that is not a non-negative integer.
var ErrMalformedRecord = errors.New("dataset: malformed record")
