package pipeline

import (
	"math/rand"

	"github.com/dblibaum/random-function-machine/attention"
	"github.com/dblibaum/random-function-machine/table"
)

// Option customizes pipeline construction.
type Option func(*pipelineConfig)

// pipelineConfig holds construction knobs; defaults are deterministic.
type pipelineConfig struct {
	rng    *rand.Rand       // nil ⇒ table.DefaultSeed stream
	policy attention.Policy // attention selection rule
}

// newPipelineConfig applies opts over defaults; later options win.
func newPipelineConfig(opts ...Option) pipelineConfig {
	cfg := pipelineConfig{
		rng:    nil,
		policy: attention.AnchorSuccessor{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.rng = table.OrDefault(cfg.rng)

	return cfg
}

// WithSeed initializes every table from a stream seeded with seed
// (seed==0 ⇒ table.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *pipelineConfig) { c.rng = table.NewRand(seed) }
}

// WithRand initializes every table from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pipeline: WithRand(nil)")
	}

	return func(c *pipelineConfig) { c.rng = r }
}

// WithPolicy sets the attention selection rule. Panics on nil.
func WithPolicy(p attention.Policy) Option {
	if p == nil {
		panic("pipeline: WithPolicy(nil)")
	}

	return func(c *pipelineConfig) { c.policy = p }
}
