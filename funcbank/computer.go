package funcbank

import (
	"fmt"
	"math/rand"

	"github.com/dblibaum/random-function-machine/table"
)

// Terminal is the reserved type that makes a position emit and stop.
const Terminal = 0

// Computer routes selected types through its function bank along the Path.
type Computer struct {
	maxInput  int
	depth     int
	types     int
	functions []*table.Table // each over [0, types] → [0, types]
	path      *table.Table   // depth×maxInput, row-major, values in [0, len(functions))
}

// New builds a Computer with random functions and a random Path.
// A nil rng uses the default stream.
//
// Errors:
//   - ErrBadShape if nFunctions<1, depth<1, maxInput<0 or nTypes<0.
func New(maxInput, nFunctions, depth, nTypes int, rng *rand.Rand) (*Computer, error) {
	if nFunctions < 1 || depth < 1 || maxInput < 0 || nTypes < 0 {
		return nil, fmt.Errorf("New(maxInput=%d, functions=%d, depth=%d, types=%d): %w",
			maxInput, nFunctions, depth, nTypes, ErrBadShape)
	}
	rng = table.OrDefault(rng)

	c := &Computer{
		maxInput:  maxInput,
		depth:     depth,
		types:     nTypes,
		functions: make([]*table.Table, nFunctions),
	}
	var err error
	for f := range c.functions {
		if c.functions[f], err = table.New(nTypes+1, nTypes, rng); err != nil {
			return nil, err
		}
	}
	if c.path, err = table.New(depth*maxInput, nFunctions-1, rng); err != nil {
		return nil, err
	}

	return c, nil
}

// MaxInput reports the Path row width.
func (c *Computer) MaxInput() int { return c.maxInput }

// Depth reports the number of passes.
func (c *Computer) Depth() int { return c.depth }

// Functions reports the size of the function bank.
func (c *Computer) Functions() int { return len(c.functions) }

// Len reports the Path size depth·maxInput (chromosome slice length).
func (c *Computer) Len() int { return c.path.Len() }

// Compute runs depth passes over types and returns the emitted values.
// types is not modified.
//
// Errors:
//   - ErrTypeOutOfRange if any element is outside [0, nTypes].
func (c *Computer) Compute(types []int) ([]int, error) {
	for i, v := range types {
		if v < 0 || v > c.types {
			return nil, fmt.Errorf("Compute: position %d = %d outside [0,%d]: %w", i, v, c.types, ErrTypeOutOfRange)
		}
	}

	work := make([]int, len(types))
	copy(work, types)
	frozen := make([]bool, len(work))

	routed := len(work) - 2
	if routed > c.maxInput {
		routed = c.maxInput
	}

	path := c.path.Values()
	var out []int
	for pass := 0; pass < c.depth; pass++ {
		row := path[pass*c.maxInput : (pass+1)*c.maxInput]
		for i := 0; i < routed; i++ {
			if frozen[i] {
				continue
			}
			r, _ := c.functions[row[i]].Get(work[i])
			if r == Terminal {
				out = append(out, work[i])
				frozen[i] = true
				continue
			}
			work[i] = r
		}
	}

	return out, nil
}

// Set replaces the Path row-major: depth rows of maxInput indices each.
func (c *Computer) Set(values []int) error {
	if err := c.path.Set(values); err != nil {
		return fmt.Errorf("funcbank: %w", err)
	}

	return nil
}

// Values returns the Path row-major.
func (c *Computer) Values() []int { return c.path.Values() }

// SetFunction replaces function f over types 0..nTypes. The function bank is
// not part of the chromosome; this is for fixtures and analysis tooling.
func (c *Computer) SetFunction(f int, values []int) error {
	if f < 0 || f >= len(c.functions) {
		return fmt.Errorf("SetFunction(%d) with %d functions: %w", f, len(c.functions), ErrBadShape)
	}
	if err := c.functions[f].Set(values); err != nil {
		return fmt.Errorf("funcbank: function %d: %w", f, err)
	}

	return nil
}

// Function returns function f over types 0..nTypes.
func (c *Computer) Function(f int) ([]int, error) {
	if f < 0 || f >= len(c.functions) {
		return nil, fmt.Errorf("Function(%d) with %d functions: %w", f, len(c.functions), ErrBadShape)
	}

	return c.functions[f].Values(), nil
}
