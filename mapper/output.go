package mapper

import (
	"fmt"
	"math/rand"

	"github.com/dblibaum/random-function-machine/table"
)

// OutputMapper maps types [0, nTypes] to output symbols [0, nOutputs].
type OutputMapper struct {
	t *table.Table
}

// NewOutputMapper draws a random output symbol for every type id.
func NewOutputMapper(nTypes, nOutputs int, rng *rand.Rand) (*OutputMapper, error) {
	if nTypes < 0 || nOutputs < 0 {
		return nil, fmt.Errorf("NewOutputMapper(%d,%d): %w", nTypes, nOutputs, ErrBadDomain)
	}
	t, err := table.New(nTypes+1, nOutputs, rng)
	if err != nil {
		return nil, err
	}

	return &OutputMapper{t: t}, nil
}

// Len reports nTypes+1.
func (m *OutputMapper) Len() int { return m.t.Len() }

// Compute maps seq 1:1 by position.
func (m *OutputMapper) Compute(seq []int) ([]int, error) {
	return lookupAll(m.t, seq)
}

// Set replaces the mapping over type ids 0..nTypes.
func (m *OutputMapper) Set(values []int) error {
	if err := m.t.Set(values); err != nil {
		return fmt.Errorf("mapper: output: %w", err)
	}

	return nil
}

// Values returns the mapping over type ids 0..nTypes.
func (m *OutputMapper) Values() []int { return m.t.Values() }
