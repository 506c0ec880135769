// Package config loads experiment settings from YAML over built-in defaults.
//
// A minimal file only names the data:
//
//	data:
//	  path: proteins.csv
//	  test_fraction: 0.25
//
// Every other field falls back to Default. Unknown keys are rejected so that a
// misspelt option does not silently run with its default. Validation failures
// wrap ErrConfiguration with the offending field:
//
//	cfg, err := config.Load("exp.yaml")
//	if errors.Is(err, config.ErrConfiguration) { ... }
package config
