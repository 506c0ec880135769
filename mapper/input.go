package mapper

import (
	"fmt"
	"math/rand"

	"github.com/dblibaum/random-function-machine/table"
)

// InputMapper is the first-layer mapper: it maps each symbol of a learned
// Alphabet to an integer in [0, Alphabet.Len()].
type InputMapper struct {
	alphabet *Alphabet
	t        *table.Table
}

// NewInputMapper learns a private copy of alphabet and maps each symbol to a
// random value in [0, alphabet.Len()]. A nil rng uses the default stream.
//
// Errors:
//   - ErrEmptyAlphabet if alphabet is nil or empty.
func NewInputMapper(alphabet *Alphabet, rng *rand.Rand) (*InputMapper, error) {
	if alphabet == nil || alphabet.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}
	own := NewAlphabet(alphabet.Symbols()...)
	t, err := table.New(own.Len(), own.Len(), rng)
	if err != nil {
		return nil, err
	}

	return &InputMapper{alphabet: own, t: t}, nil
}

// Alphabet returns a copy of the learned alphabet.
func (m *InputMapper) Alphabet() *Alphabet {
	return NewAlphabet(m.alphabet.Symbols()...)
}

// Len reports the number of table entries (the alphabet size).
func (m *InputMapper) Len() int { return m.t.Len() }

// Compute maps every known symbol of seq and drops the unknown ones.
//
// Complexity: O(len(seq)).
func (m *InputMapper) Compute(seq []rune) []int {
	out := make([]int, 0, len(seq))
	for _, s := range seq {
		id, ok := m.alphabet.ID(s)
		if !ok {
			continue
		}
		v, _ := m.t.Get(id) // id < Len() by construction
		out = append(out, v)
	}

	return out
}

// Set replaces the mapping in alphabet first-use order.
func (m *InputMapper) Set(values []int) error {
	if err := m.t.Set(values); err != nil {
		return fmt.Errorf("mapper: input: %w", err)
	}

	return nil
}

// Values returns the mapping in alphabet first-use order.
func (m *InputMapper) Values() []int { return m.t.Values() }
