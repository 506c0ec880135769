package chromosome

import (
	"fmt"
	"math/rand"

	"github.com/dblibaum/random-function-machine/table"
)

// Segment names, in layout order.
const (
	SegmentInput     = "input"
	SegmentFold      = "fold"
	SegmentType      = "type"
	SegmentAttention = "attention"
	SegmentPath      = "path"
	SegmentOutput    = "output"
)

// Segment is one contiguous slice of the genome and its gene range.
type Segment struct {
	Name   string
	Offset int
	Len    int
	Min    int // inclusive
	Max    int // inclusive
}

// End returns the exclusive end offset.
func (s Segment) End() int { return s.Offset + s.Len }

// Range is the inclusive domain of one gene.
type Range struct {
	Min int
	Max int
}

// Layout is the canonical segmentation of a genome for a given Sizes.
type Layout struct {
	sizes    Sizes
	segments []Segment
	total    int
}

// NewLayout computes the six segments for sizes.
//
// Errors:
//   - ErrInvalidSizes (wrapped) if sizes.Validate fails.
//
// Complexity: O(1).
func NewLayout(sizes Sizes) (*Layout, error) {
	if err := sizes.Validate(); err != nil {
		return nil, err
	}
	n := sizes.Objects + 1
	specs := []struct {
		name     string
		len, max int
	}{
		{SegmentInput, sizes.Alphabet, sizes.Alphabet},
		{SegmentFold, n * (n + 1) / 2, sizes.Objects},
		{SegmentType, n, sizes.Types},
		{SegmentAttention, sizes.MaxInput(), sizes.Types},
		{SegmentPath, sizes.ComputerDepth * sizes.MaxInput(), sizes.Functions - 1},
		{SegmentOutput, sizes.Types + 1, sizes.Outputs},
	}

	l := &Layout{sizes: sizes, segments: make([]Segment, 0, len(specs))}
	for _, sp := range specs {
		l.segments = append(l.segments, Segment{Name: sp.name, Offset: l.total, Len: sp.len, Min: 0, Max: sp.max})
		l.total += sp.len
	}

	return l, nil
}

// Sizes returns the constants the layout was built from.
func (l *Layout) Sizes() Sizes { return l.sizes }

// Len returns the total genome length.
func (l *Layout) Len() int { return l.total }

// Segments returns the segments in layout order.
func (l *Layout) Segments() []Segment {
	out := make([]Segment, len(l.segments))
	copy(out, l.segments)

	return out
}

// Segment looks up a segment by name.
func (l *Layout) Segment(name string) (Segment, bool) {
	for _, s := range l.segments {
		if s.Name == name {
			return s, true
		}
	}

	return Segment{}, false
}

// Ranges returns the per-gene domains in genome order, for optimizers.
func (l *Layout) Ranges() []Range {
	out := make([]Range, 0, l.total)
	for _, s := range l.segments {
		for i := 0; i < s.Len; i++ {
			out = append(out, Range{Min: s.Min, Max: s.Max})
		}
	}

	return out
}

// Validate checks genome length and every gene against its segment range.
func (l *Layout) Validate(genes []int) error {
	if len(genes) != l.total {
		return fmt.Errorf("length %d, want %d: %w", len(genes), l.total, ErrInvalidChromosome)
	}
	for _, s := range l.segments {
		for i := s.Offset; i < s.End(); i++ {
			if genes[i] < s.Min || genes[i] > s.Max {
				return fmt.Errorf("gene %d (%s[%d]) = %d outside [%d,%d]: %w",
					i, s.Name, i-s.Offset, genes[i], s.Min, s.Max, ErrInvalidChromosome)
			}
		}
	}

	return nil
}

// Split validates genes and returns one copied slice per segment, in layout order.
func (l *Layout) Split(genes []int) ([][]int, error) {
	if err := l.Validate(genes); err != nil {
		return nil, err
	}
	parts := make([][]int, len(l.segments))
	for i, s := range l.segments {
		parts[i] = append([]int(nil), genes[s.Offset:s.End()]...)
	}

	return parts, nil
}

// Join concatenates per-segment slices into a genome and validates it.
func (l *Layout) Join(parts [][]int) ([]int, error) {
	if len(parts) != len(l.segments) {
		return nil, fmt.Errorf("%d parts, want %d: %w", len(parts), len(l.segments), ErrInvalidChromosome)
	}
	genes := make([]int, 0, l.total)
	for i, p := range parts {
		if len(p) != l.segments[i].Len {
			return nil, fmt.Errorf("segment %s has %d genes, want %d: %w",
				l.segments[i].Name, len(p), l.segments[i].Len, ErrInvalidChromosome)
		}
		genes = append(genes, p...)
	}
	if err := l.Validate(genes); err != nil {
		return nil, err
	}

	return genes, nil
}

// Random draws a genome uniformly inside the declared ranges.
// A nil rng uses the default stream.
func (l *Layout) Random(rng *rand.Rand) []int {
	rng = table.OrDefault(rng)
	genes := make([]int, 0, l.total)
	for _, s := range l.segments {
		for i := 0; i < s.Len; i++ {
			genes = append(genes, s.Min+table.Uniform(rng, s.Max-s.Min))
		}
	}

	return genes
}
