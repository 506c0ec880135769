package fold

import (
	"fmt"
	"math/rand"

	"github.com/dblibaum/random-function-machine/table"
)

// Structure folds object sequences into a hierarchy through its FoldTable.
type Structure struct {
	objects int // nObjects; valid object ids are [0, objects]
	pairs   *table.Table
}

// PairCount returns the FoldTable size for nObjects: n·(n+1)/2 with n = nObjects+1.
func PairCount(nObjects int) int {
	n := nObjects + 1

	return n * (n + 1) / 2
}

// New builds a Structure whose FoldTable maps every unordered pair over
// [0, nObjects] to a random object in [0, nObjects].
// A nil rng uses the default deterministic stream.
//
// Complexity: O(nObjects²) time and space.
func New(nObjects int, rng *rand.Rand) (*Structure, error) {
	if nObjects < 0 {
		return nil, fmt.Errorf("New(%d): %w", nObjects, ErrBadObjects)
	}
	t, err := table.New(PairCount(nObjects), nObjects, rng)
	if err != nil {
		return nil, err
	}

	return &Structure{objects: nObjects, pairs: t}, nil
}

// Objects reports nObjects.
func (s *Structure) Objects() int { return s.objects }

// Len reports the number of FoldTable entries (chromosome slice length).
func (s *Structure) Len() int { return s.pairs.Len() }

// index maps the unordered pair {a, b} to its slot in enumeration order.
func (s *Structure) index(a, b int) int {
	if a > b {
		a, b = b, a
	}
	n := s.objects + 1

	return a*n - a*(a-1)/2 + (b - a)
}

// Fold returns the FoldTable entry for the unordered pair {a, b}.
func (s *Structure) Fold(a, b int) (int, error) {
	if a < 0 || a > s.objects || b < 0 || b > s.objects {
		return 0, fmt.Errorf("Fold(%d,%d) with objects [0,%d]: %w", a, b, s.objects, ErrObjectOutOfRange)
	}

	return s.pairs.Get(s.index(a, b))
}

// Make folds seq into its hierarchy, longest level first. Sequences of
// length ≤ 1 produce no levels. seq is not modified.
//
// Errors:
//   - ErrObjectOutOfRange if any element of seq is outside [0, nObjects].
//
// Complexity: O(L²) time, O(L²) space for a sequence of length L.
func (s *Structure) Make(seq []int) ([][]int, error) {
	for i, v := range seq {
		if v < 0 || v > s.objects {
			return nil, fmt.Errorf("Make: element %d = %d outside [0,%d]: %w", i, v, s.objects, ErrObjectOutOfRange)
		}
	}

	var levels [][]int
	dim := seq
	for len(dim) > 1 {
		next := make([]int, len(dim)-2)
		for k := range next {
			v, err := s.pairs.Get(s.index(dim[k], dim[k+1]))
			if err != nil {
				return nil, err
			}
			next[k] = v
		}
		levels = append(levels, next)
		dim = next
	}

	return levels, nil
}

// Set replaces every FoldTable entry in key enumeration order.
// Values must lie in [0, nObjects]; see table.Table.Set for errors.
func (s *Structure) Set(values []int) error {
	if err := s.pairs.Set(values); err != nil {
		return fmt.Errorf("fold: %w", err)
	}

	return nil
}

// Values returns the FoldTable in key enumeration order.
func (s *Structure) Values() []int { return s.pairs.Values() }
