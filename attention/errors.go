package attention

import "errors"

// ErrBadShape indicates a non-positive depth or width, or a negative type count.
var ErrBadShape = errors.New("attention: depth and width must be ≥ 1, types ≥ 0")
