package pipeline

import (
	"fmt"

	"github.com/dblibaum/random-function-machine/attention"
	"github.com/dblibaum/random-function-machine/chromosome"
	"github.com/dblibaum/random-function-machine/fold"
	"github.com/dblibaum/random-function-machine/funcbank"
	"github.com/dblibaum/random-function-machine/mapper"
)

// FallbackClass is predicted whenever the function bank emits nothing.
const FallbackClass = 0

// Pipeline is the full symbol-to-class machine plus its chromosome layout.
type Pipeline struct {
	layout    *chromosome.Layout
	input     *mapper.InputMapper
	structure *fold.Structure
	types     *mapper.TypeMapper
	attention *attention.Selector
	computer  *funcbank.Computer
	output    *mapper.OutputMapper
}

// stage is the Set/Values contract shared by every chromosome-backed stage.
type stage interface {
	Set(values []int) error
	Values() []int
}

// Trace records every intermediate result of one forward pass.
type Trace struct {
	Mapped    []int   // input mapper output (objects)
	Hierarchy [][]int // fold levels, longest first
	Typed     [][]int // hierarchy after type mapping
	Selected  []int   // attention output
	Emitted   []int   // function bank output (types)
	Output    []int   // output symbols
	Class     int     // decision-rule result
}

// New builds a pipeline with randomly initialized tables.
// sizes.Alphabet may be left 0 and is then taken from alphabet.
//
// Errors:
//   - ErrAlphabetMismatch if sizes.Alphabet ≠ alphabet.Len().
//   - chromosome.ErrInvalidSizes (wrapped) for unusable sizes.
//   - mapper.ErrEmptyAlphabet for an empty alphabet.
func New(alphabet *mapper.Alphabet, sizes chromosome.Sizes, opts ...Option) (*Pipeline, error) {
	if alphabet == nil || alphabet.Len() == 0 {
		return nil, mapper.ErrEmptyAlphabet
	}
	if sizes.Alphabet == 0 {
		sizes.Alphabet = alphabet.Len()
	}
	if sizes.Alphabet != alphabet.Len() {
		return nil, fmt.Errorf("sizes say %d symbols, alphabet has %d: %w", sizes.Alphabet, alphabet.Len(), ErrAlphabetMismatch)
	}
	layout, err := chromosome.NewLayout(sizes)
	if err != nil {
		return nil, err
	}
	cfg := newPipelineConfig(opts...)

	p := &Pipeline{layout: layout}
	if p.input, err = mapper.NewInputMapper(alphabet, cfg.rng); err != nil {
		return nil, err
	}
	if p.structure, err = fold.New(sizes.Objects, cfg.rng); err != nil {
		return nil, err
	}
	if p.types, err = mapper.NewTypeMapper(sizes.Objects, sizes.Types, cfg.rng); err != nil {
		return nil, err
	}
	if p.attention, err = attention.New(sizes.AttentionDepth, sizes.AttentionWidth, sizes.Types, cfg.rng,
		attention.WithPolicy(cfg.policy)); err != nil {
		return nil, err
	}
	if p.computer, err = funcbank.New(sizes.MaxInput(), sizes.Functions, sizes.ComputerDepth, sizes.Types, cfg.rng); err != nil {
		return nil, err
	}
	if p.output, err = mapper.NewOutputMapper(sizes.Types, sizes.Outputs, cfg.rng); err != nil {
		return nil, err
	}

	return p, nil
}

// Layout returns the chromosome layout for this pipeline.
func (p *Pipeline) Layout() *chromosome.Layout { return p.layout }

// Sizes returns the configured sizes.
func (p *Pipeline) Sizes() chromosome.Sizes { return p.layout.Sizes() }

// Alphabet returns a copy of the learned input alphabet.
func (p *Pipeline) Alphabet() *mapper.Alphabet { return p.input.Alphabet() }

// stages lists the chromosome-backed stages in layout order.
func (p *Pipeline) stages() []stage {
	return []stage{p.input, p.structure, p.types, p.attention, p.computer, p.output}
}

// Decode replaces every table from genes. The genome is validated in full
// before any stage changes, so a rejected genome leaves the pipeline intact.
//
// Errors:
//   - chromosome.ErrInvalidChromosome (wrapped) on wrong length or range.
func (p *Pipeline) Decode(genes []int) error {
	parts, err := p.layout.Split(genes)
	if err != nil {
		return fmt.Errorf("pipeline: decode: %w", err)
	}
	for i, st := range p.stages() {
		if err = st.Set(parts[i]); err != nil {
			return fmt.Errorf("pipeline: decode: %w", err)
		}
	}

	return nil
}

// Encode reads every table back into a genome in layout order.
func (p *Pipeline) Encode() []int {
	genes := make([]int, 0, p.layout.Len())
	for _, st := range p.stages() {
		genes = append(genes, st.Values()...)
	}

	return genes
}

// Run performs one forward pass and records every stage.
func (p *Pipeline) Run(seq []rune) (Trace, error) {
	var tr Trace
	var err error

	tr.Mapped = p.input.Compute(seq)
	if tr.Hierarchy, err = p.structure.Make(tr.Mapped); err != nil {
		return Trace{}, fmt.Errorf("pipeline: fold: %w", err)
	}
	if tr.Typed, err = p.types.ComputeLevels(tr.Hierarchy); err != nil {
		return Trace{}, fmt.Errorf("pipeline: type: %w", err)
	}
	tr.Selected = p.attention.Filter(tr.Typed)
	if tr.Emitted, err = p.computer.Compute(tr.Selected); err != nil {
		return Trace{}, fmt.Errorf("pipeline: compute: %w", err)
	}
	if tr.Output, err = p.output.Compute(tr.Emitted); err != nil {
		return Trace{}, fmt.Errorf("pipeline: output: %w", err)
	}
	tr.Class = Decide(tr.Output)

	return tr, nil
}

// Compute returns the output symbol sequence for seq (possibly empty).
func (p *Pipeline) Compute(seq []rune) ([]int, error) {
	tr, err := p.Run(seq)
	if err != nil {
		return nil, err
	}

	return tr.Output, nil
}

// Predict returns the class for seq under the decision rule.
func (p *Pipeline) Predict(seq []rune) (int, error) {
	tr, err := p.Run(seq)
	if err != nil {
		return FallbackClass, err
	}

	return tr.Class, nil
}

// Decide applies the decision rule: last symbol, or FallbackClass when empty.
func Decide(output []int) int {
	if len(output) == 0 {
		return FallbackClass
	}

	return output[len(output)-1]
}
