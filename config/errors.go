package config

import "errors"

// ErrConfiguration indicates unusable settings, including degenerate
// dataset partitions discovered at evaluator construction.
var ErrConfiguration = errors.New("config: invalid configuration")
