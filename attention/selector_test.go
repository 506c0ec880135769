package attention_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dblibaum/random-function-machine/attention"
	"github.com/dblibaum/random-function-machine/table"
)

// TestNew_BadShape rejects degenerate shapes.
func TestNew_BadShape(t *testing.T) {
	for _, tc := range []struct{ d, w, types int }{{0, 1, 1}, {1, 0, 1}, {1, 1, -1}} {
		_, err := attention.New(tc.d, tc.w, tc.types, nil)
		assert.ErrorIs(t, err, attention.ErrBadShape, "%+v", tc)
	}
}

// TestParamCount checks the 2·depth·width layout.
func TestParamCount(t *testing.T) {
	s, err := attention.New(2, 3, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Len())
	assert.Equal(t, 12, attention.ParamCount(2, 3))
	assert.Equal(t, 6, s.MaxOutput())
}

// TestAnchorSuccessor_Rule hand-checks the default policy.
func TestAnchorSuccessor_Rule(t *testing.T) {
	p := attention.AnchorSuccessor{}
	level := []int{3, 1, 2, 1, 0}

	cases := []struct {
		name          string
		anchor, probe int
		want          int
		ok            bool
	}{
		{"first match from start", 1, 0, 2, true},
		{"probe skips first match", 1, 2, 0, true},
		{"probe wraps", 3, 7, 1, true},      // start = 2 → wraps to j=0
		{"match at tail wraps", 0, 0, 3, true}, // j=4 → successor level[0]
		{"absent anchor", 4, 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := p.Select(level, tc.anchor, tc.probe)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.want, v)
			}
		})
	}

	// Single-element levels select themselves.
	v, ok := p.Select([]int{2}, 2, 5)
	require.True(t, ok)
	require.Equal(t, 2, v)
}

// TestFilter_SlotOrder verifies slots are visited (depth, object) and that
// missing levels contribute nothing.
func TestFilter_SlotOrder(t *testing.T) {
	s, err := attention.New(3, 2, 3, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set([]int{
		// depth 0: slot0 anchor=1 probe=0, slot1 anchor=3 probe=0
		1, 0, 3, 0,
		// depth 1: slot0 anchor=2 probe=0, slot1 anchor=0 probe=0
		2, 0, 0, 0,
		// depth 2: never present in the hierarchy below
		1, 1, 1, 1,
	}))

	levels := [][]int{
		{1, 2, 3},
		{2},
	}
	got := s.Filter(levels)
	// d0s0: 1 at j=0 → 2 ; d0s1: 3 at j=2 → level[0]=1 ; d1s0: 2 → 2 ; d1s1: absent
	assert.Equal(t, []int{2, 1, 2}, got)
}

// TestFilter_Bound checks the output never exceeds depth·width on deep
// hierarchies and that every selected value comes from the hierarchy range.
func TestFilter_Bound(t *testing.T) {
	rng := table.NewRand(21)
	s, err := attention.New(2, 3, 4, rng, attention.WithPolicy(attention.Positional{}))
	require.NoError(t, err)

	for trial := 0; trial < 50; trial++ {
		s2, err := attention.New(2, 3, 4, rng)
		require.NoError(t, err)

		levels := make([][]int, 1+trial%6)
		for i := range levels {
			levels[i] = make([]int, 1+rng.Intn(8))
			for j := range levels[i] {
				levels[i][j] = rng.Intn(5)
			}
		}
		for _, sel := range []*attention.Selector{s, s2} {
			out := sel.Filter(levels)
			require.LessOrEqual(t, len(out), sel.MaxOutput())
			for _, v := range out {
				require.GreaterOrEqual(t, v, 0)
				require.LessOrEqual(t, v, 4)
			}
		}
	}

	// Positional fills every slot of every existing level.
	out := s.Filter([][]int{{1}, {2, 3}, {4}})
	assert.Len(t, out, 6)
}

// TestFilter_Empty covers empty hierarchies and empty levels.
func TestFilter_Empty(t *testing.T) {
	s, err := attention.New(2, 2, 2, nil, attention.WithPolicy(attention.Positional{}))
	require.NoError(t, err)

	assert.Empty(t, s.Filter(nil))
	assert.Empty(t, s.Filter([][]int{{}, {}}))
}

// TestWithPolicy_Func checks custom policies plug in and nil panics.
func TestWithPolicy_Func(t *testing.T) {
	first := attention.PolicyFunc(func(level []int, _, _ int) (int, bool) { return level[0], true })
	s, err := attention.New(1, 2, 5, nil, attention.WithPolicy(first))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, s.Filter([][]int{{4, 1}}))

	assert.Panics(t, func() { attention.WithPolicy(nil) })
}

// TestSet_RoundTrip verifies parameter round-trip and range enforcement.
func TestSet_RoundTrip(t *testing.T) {
	s, err := attention.New(2, 2, 3, nil)
	require.NoError(t, err)

	in := []int{0, 1, 2, 3, 3, 2, 1, 0}
	require.NoError(t, s.Set(in))
	assert.Equal(t, in, s.Values())

	in[3] = 4
	assert.ErrorIs(t, s.Set(in), table.ErrValueOutOfRange)
}
