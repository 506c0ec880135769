package fitness

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/dblibaum/random-function-machine/config"
	"github.com/dblibaum/random-function-machine/dataset"
	"github.com/dblibaum/random-function-machine/pipeline"
	"github.com/dblibaum/random-function-machine/table"
)

// samplingStream identifies the evaluator's RNG substream.
const samplingStream = 0x5a

// Options controls evaluation.
type Options struct {
	Stochastic    bool  // sample batches instead of full partitions
	BatchSize     int   // training draws per evaluation when Stochastic
	ReportHeldOut bool  // score the held-out partition and track the best
	Store         Store // receives each new best; nil ⇒ not persisted
	Seed          int64 // sampling seed; 0 ⇒ table.DefaultSeed
}

// DefaultOptions returns full-partition evaluation with held-out tracking and
// no persistence.
func DefaultOptions() Options {
	return Options{
		Stochastic:    false,
		BatchSize:     100,
		ReportHeldOut: true,
	}
}

// Report describes the most recent evaluation.
type Report struct {
	Train      float64
	HeldOut    float64 // meaningful only when ReportHeldOut is set
	NewBest    bool
	Evaluation int // 1-based evaluation counter
}

// Evaluator is the fitness function bound to one pipeline and dataset split.
type Evaluator struct {
	mu sync.Mutex

	pipe  *pipeline.Pipeline
	train []dataset.Record
	test  []dataset.Record
	opts  Options
	rng   *rand.Rand

	best      float64
	bestGenes []int
	last      Report
}

// New binds an evaluator to pipe and the given partitions.
//
// Errors:
//   - ErrNilPipeline.
//   - ErrEmptyPartition and config.ErrConfiguration (both wrapped) for an empty
//     training partition, or an empty held-out partition with ReportHeldOut.
//   - config.ErrConfiguration for a stochastic BatchSize below 1.
func New(pipe *pipeline.Pipeline, train, test []dataset.Record, opts Options) (*Evaluator, error) {
	if pipe == nil {
		return nil, ErrNilPipeline
	}
	if len(train) == 0 {
		return nil, fmt.Errorf("training partition: %w: %w", ErrEmptyPartition, config.ErrConfiguration)
	}
	if opts.ReportHeldOut && len(test) == 0 {
		return nil, fmt.Errorf("held-out partition: %w: %w", ErrEmptyPartition, config.ErrConfiguration)
	}
	if opts.Stochastic && opts.BatchSize < 1 {
		return nil, fmt.Errorf("fitness: batch size %d: %w", opts.BatchSize, config.ErrConfiguration)
	}

	return &Evaluator{
		pipe:  pipe,
		train: train,
		test:  test,
		opts:  opts,
		rng:   table.DeriveRand(table.NewRand(opts.Seed), samplingStream),
		best:  -1,
	}, nil
}

// Evaluate decodes genes and returns their training accuracy in [0, 1].
//
// Errors:
//   - chromosome.ErrInvalidChromosome (wrapped) for malformed genomes.
//   - Store failures, wrapped.
func (e *Evaluator) Evaluate(genes []int) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.pipe.Decode(genes); err != nil {
		return 0, err
	}

	train, test := e.train, e.test
	if e.opts.Stochastic {
		train = dataset.Sample(e.train, e.opts.BatchSize, e.rng)
		if e.opts.ReportHeldOut {
			test = dataset.Sample(e.test, heldOutDraws(e.opts.BatchSize), e.rng)
		}
	}

	rep := Report{Evaluation: e.last.Evaluation + 1}
	var err error
	if rep.Train, err = e.accuracy(train); err != nil {
		return 0, err
	}
	if e.opts.ReportHeldOut {
		if rep.HeldOut, err = e.accuracy(test); err != nil {
			return 0, err
		}
		if rep.HeldOut > e.best {
			if e.opts.Store != nil {
				if err = e.opts.Store.Save(genes); err != nil {
					return 0, fmt.Errorf("fitness: store best: %w", err)
				}
			}
			e.best = rep.HeldOut
			e.bestGenes = append(e.bestGenes[:0], genes...)
			rep.NewBest = true
		}
	}
	e.last = rep

	return rep.Train, nil
}

// Best returns the best held-out accuracy so far and its chromosome.
// ok is false until a held-out score has been recorded.
func (e *Evaluator) Best() (accuracy float64, genes []int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bestGenes == nil {
		return 0, nil, false
	}

	return e.best, append([]int(nil), e.bestGenes...), true
}

// Last returns the report of the most recent successful evaluation.
func (e *Evaluator) Last() Report {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.last
}

// accuracy is the fraction of records whose prediction equals the target.
// records is never empty here.
func (e *Evaluator) accuracy(records []dataset.Record) (float64, error) {
	correct := 0
	for _, r := range records {
		class, err := e.pipe.Predict(r.Symbols())
		if err != nil {
			return 0, fmt.Errorf("fitness: record %s: %w", r.ID, err)
		}
		if class == r.Target {
			correct++
		}
	}

	return float64(correct) / float64(len(records)), nil
}

// heldOutDraws is the stochastic held-out sample size.
func heldOutDraws(batch int) int {
	if n := batch / 2; n > 1 {
		return n
	}

	return 1
}
