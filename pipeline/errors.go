package pipeline

import "errors"

// ErrAlphabetMismatch indicates Sizes.Alphabet disagrees with the alphabet passed to New.
var ErrAlphabetMismatch = errors.New("pipeline: alphabet size mismatch")
