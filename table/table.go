package table

import (
	"fmt"
	"math/rand"
)

// Table is an ordered lookup table from key 0..Len()-1 to a value in [0, Max].
//
// The zero value is an empty table with Max()==0. Table is not safe for
// concurrent mutation; the pipeline that owns it serializes access.
type Table struct {
	values []int
	max    int
}

// New returns a table of n entries, each drawn uniformly from [0, max].
// A nil rng uses the default deterministic stream (seed==0 policy).
//
// Errors:
//   - ErrBadSize if n<0 or max<0.
//
// Complexity: O(n) time and space.
func New(n, max int, rng *rand.Rand) (*Table, error) {
	if n < 0 || max < 0 {
		return nil, fmt.Errorf("New(n=%d, max=%d): %w", n, max, ErrBadSize)
	}
	rng = OrDefault(rng)

	t := &Table{values: make([]int, n), max: max}
	for i := range t.values {
		t.values[i] = Uniform(rng, max)
	}

	return t, nil
}

// FromValues builds a table holding a copy of values, validated against [0, max].
func FromValues(values []int, max int) (*Table, error) {
	if max < 0 {
		return nil, fmt.Errorf("FromValues(max=%d): %w", max, ErrBadSize)
	}
	t := &Table{values: make([]int, len(values)), max: max}
	if err := t.Set(values); err != nil {
		return nil, err
	}

	return t, nil
}

// Len reports the number of keys.
func (t *Table) Len() int { return len(t.values) }

// Max reports the inclusive upper bound of stored values.
func (t *Table) Max() int { return t.max }

// Get returns the value stored under key.
//
// Errors:
//   - ErrKeyOutOfRange if key is outside [0, Len()).
func (t *Table) Get(key int) (int, error) {
	if key < 0 || key >= len(t.values) {
		return 0, fmt.Errorf("Get(%d) with %d keys: %w", key, len(t.values), ErrKeyOutOfRange)
	}

	return t.values[key], nil
}

// Set replaces every value, in ascending key order. The table is left
// untouched when validation fails.
//
// Errors:
//   - ErrLengthMismatch if len(values) != Len().
//   - ErrValueOutOfRange if any value is outside [0, Max()].
//
// Complexity: O(n).
func (t *Table) Set(values []int) error {
	if len(values) != len(t.values) {
		return fmt.Errorf("Set: got %d values, want %d: %w", len(values), len(t.values), ErrLengthMismatch)
	}
	for i, v := range values {
		if v < 0 || v > t.max {
			return fmt.Errorf("Set: value %d at key %d outside [0,%d]: %w", v, i, t.max, ErrValueOutOfRange)
		}
	}
	copy(t.values, values)

	return nil
}

// Values returns a copy of the stored values in ascending key order.
func (t *Table) Values() []int {
	out := make([]int, len(t.values))
	copy(out, t.values)

	return out
}
