package attention

import (
	"fmt"
	"math/rand"

	"github.com/dblibaum/random-function-machine/table"
)

// Components is the number of learned parameters per slot.
const Components = 2

// Selector filters a typed hierarchy into a flat sequence of at most
// Depth()·Width() types.
type Selector struct {
	depth  int
	width  int
	types  int
	params *table.Table
	policy Policy
}

// ParamCount returns the parameter count for a depth×width selector.
func ParamCount(depth, width int) int { return Components * depth * width }

// New builds a Selector with random parameters in [0, nTypes].
// A nil rng uses the default stream; the default policy is AnchorSuccessor.
//
// Errors:
//   - ErrBadShape if depth<1, width<1 or nTypes<0.
func New(depth, width, nTypes int, rng *rand.Rand, opts ...Option) (*Selector, error) {
	if depth < 1 || width < 1 || nTypes < 0 {
		return nil, fmt.Errorf("New(depth=%d, width=%d, types=%d): %w", depth, width, nTypes, ErrBadShape)
	}
	params, err := table.New(ParamCount(depth, width), nTypes, rng)
	if err != nil {
		return nil, err
	}
	s := &Selector{depth: depth, width: width, types: nTypes, params: params, policy: AnchorSuccessor{}}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Depth reports the number of hierarchy levels the selector looks at.
func (s *Selector) Depth() int { return s.depth }

// Width reports the number of slots per level.
func (s *Selector) Width() int { return s.width }

// MaxOutput reports the output length bound depth·width.
func (s *Selector) MaxOutput() int { return s.depth * s.width }

// Len reports the parameter count (chromosome slice length).
func (s *Selector) Len() int { return s.params.Len() }

// Filter selects types from levels slot by slot. levels is not modified.
//
// Complexity: O(depth·width·L) for levels of length ≤ L.
func (s *Selector) Filter(levels [][]int) []int {
	p := s.params.Values()
	out := make([]int, 0, s.MaxOutput())
	for d := 0; d < s.depth && d < len(levels); d++ {
		level := levels[d]
		if len(level) == 0 {
			continue
		}
		for w := 0; w < s.width; w++ {
			base := Components * (d*s.width + w)
			if v, ok := s.policy.Select(level, p[base], p[base+1]); ok {
				out = append(out, v)
			}
		}
	}

	return out
}

// Set replaces the parameters in slot order (depth, object, component).
func (s *Selector) Set(values []int) error {
	if err := s.params.Set(values); err != nil {
		return fmt.Errorf("attention: %w", err)
	}

	return nil
}

// Values returns the parameters in slot order.
func (s *Selector) Values() []int { return s.params.Values() }
