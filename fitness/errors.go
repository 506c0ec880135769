package fitness

import "errors"

var (
	// ErrEmptyPartition indicates a training partition, or a held-out
	// partition while held-out reporting is on, with no records. It is always
	// returned together with config.ErrConfiguration.
	ErrEmptyPartition = errors.New("fitness: empty partition")

	// ErrNilPipeline is returned by New when no pipeline is supplied.
	ErrNilPipeline = errors.New("fitness: nil pipeline")
)
