package mapper

import (
	"fmt"
	"math/rand"

	"github.com/dblibaum/random-function-machine/table"
)

// TypeMapper maps objects [0, nObjects] to types [0, nTypes]. One TypeMapper
// is applied to every level of a hierarchy within a pipeline pass.
type TypeMapper struct {
	t *table.Table
}

// NewTypeMapper draws a random type for every object id.
// A nil rng uses the default stream.
func NewTypeMapper(nObjects, nTypes int, rng *rand.Rand) (*TypeMapper, error) {
	if nObjects < 0 || nTypes < 0 {
		return nil, fmt.Errorf("NewTypeMapper(%d,%d): %w", nObjects, nTypes, ErrBadDomain)
	}
	t, err := table.New(nObjects+1, nTypes, rng)
	if err != nil {
		return nil, err
	}

	return &TypeMapper{t: t}, nil
}

// Len reports nObjects+1.
func (m *TypeMapper) Len() int { return m.t.Len() }

// Compute maps every position of seq; no filtering.
//
// Errors:
//   - ErrKeyOutOfRange if an element is outside [0, nObjects].
func (m *TypeMapper) Compute(seq []int) ([]int, error) {
	return lookupAll(m.t, seq)
}

// ComputeLevels maps each level of a hierarchy, returning a new hierarchy of
// the same shape.
func (m *TypeMapper) ComputeLevels(levels [][]int) ([][]int, error) {
	out := make([][]int, len(levels))
	for i, l := range levels {
		mapped, err := m.Compute(l)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		out[i] = mapped
	}

	return out, nil
}

// Set replaces the mapping over object ids 0..nObjects.
func (m *TypeMapper) Set(values []int) error {
	if err := m.t.Set(values); err != nil {
		return fmt.Errorf("mapper: type: %w", err)
	}

	return nil
}

// Values returns the mapping over object ids 0..nObjects.
func (m *TypeMapper) Values() []int { return m.t.Values() }

// lookupAll maps seq through t, 1:1.
func lookupAll(t *table.Table, seq []int) ([]int, error) {
	out := make([]int, len(seq))
	for i, k := range seq {
		if k < 0 || k >= t.Len() {
			return nil, fmt.Errorf("position %d: key %d outside [0,%d]: %w", i, k, t.Len()-1, ErrKeyOutOfRange)
		}
		out[i], _ = t.Get(k)
	}

	return out, nil
}
