package fold_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dblibaum/random-function-machine/fold"
	"github.com/dblibaum/random-function-machine/table"
)

// StructureSuite exercises FoldTable layout and hierarchy construction.
type StructureSuite struct {
	suite.Suite
}

// TestPairCount verifies the triangular table size including self-pairs.
func (s *StructureSuite) TestPairCount() {
	require.Equal(s.T(), 1, fold.PairCount(0))
	require.Equal(s.T(), 6, fold.PairCount(2))
	require.Equal(s.T(), 15, fold.PairCount(4))

	st, err := fold.New(4, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 15, st.Len())
}

// TestBadObjects rejects negative object counts.
func (s *StructureSuite) TestBadObjects() {
	_, err := fold.New(-1, nil)
	require.ErrorIs(s.T(), err, fold.ErrBadObjects)
}

// TestSymmetricKeys verifies {a,b} and {b,a} read the same slot, and that the
// enumeration order is i ascending then j ascending from i.
func (s *StructureSuite) TestSymmetricKeys() {
	st, err := fold.New(2, nil)
	require.NoError(s.T(), err)

	// Pairs in order: {0,0} {0,1} {0,2} {1,1} {1,2} {2,2}
	require.NoError(s.T(), st.Set([]int{0, 1, 2, 0, 1, 2}))

	cases := []struct{ a, b, want int }{
		{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {0, 2, 2}, {2, 0, 2},
		{1, 1, 0}, {1, 2, 1}, {2, 1, 1}, {2, 2, 2},
	}
	for _, tc := range cases {
		got, err := st.Fold(tc.a, tc.b)
		require.NoError(s.T(), err)
		require.Equal(s.T(), tc.want, got, "Fold(%d,%d)", tc.a, tc.b)
	}
}

// TestMake_LevelLengths checks each level is two shorter than the last and
// folding stops at length ≤ 1.
func (s *StructureSuite) TestMake_LevelLengths() {
	st, err := fold.New(3, table.NewRand(9))
	require.NoError(s.T(), err)

	cases := []struct {
		length int
		want   []int
	}{
		{0, nil},
		{1, nil},
		{2, []int{0}},
		{3, []int{1}},
		{5, []int{3, 1}},
		{6, []int{4, 2, 0}},
		{9, []int{7, 5, 3, 1}},
	}
	for _, tc := range cases {
		seq := make([]int, tc.length)
		for i := range seq {
			seq[i] = i % 4
		}
		levels, err := st.Make(seq)
		require.NoError(s.T(), err)

		var got []int
		for _, l := range levels {
			got = append(got, len(l))
		}
		require.Equal(s.T(), tc.want, got, "length %d", tc.length)
	}
}

// TestMake_Scenario folds [0,1,0,1,0] with nObjects=2: lengths 3 then 1, and an
// all-zero FoldTable forces every level to zero.
func (s *StructureSuite) TestMake_Scenario() {
	st, err := fold.New(2, table.NewRand(1))
	require.NoError(s.T(), err)

	seq := []int{0, 1, 0, 1, 0}
	levels, err := st.Make(seq)
	require.NoError(s.T(), err)
	require.Len(s.T(), levels, 2)
	require.Len(s.T(), levels[0], 3)
	require.Len(s.T(), levels[1], 1)

	require.NoError(s.T(), st.Set(make([]int, st.Len())))
	levels, err = st.Make(seq)
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]int{{0, 0, 0}, {0}}, levels)
	require.Equal(s.T(), []int{0, 1, 0, 1, 0}, seq, "input must not be modified")
}

// TestMake_ExactValues hand-checks a fold with a known table.
func (s *StructureSuite) TestMake_ExactValues() {
	st, err := fold.New(2, nil)
	require.NoError(s.T(), err)
	// {0,0}→1 {0,1}→2 {0,2}→0 {1,1}→1 {1,2}→2 {2,2}→0
	require.NoError(s.T(), st.Set([]int{1, 2, 0, 1, 2, 0}))

	levels, err := st.Make([]int{0, 1, 2, 2, 0})
	require.NoError(s.T(), err)
	// level0: {0,1}=2 {1,2}=2 {2,2}=0 ; level1: {2,2}=0
	require.Equal(s.T(), [][]int{{2, 2, 0}, {0}}, levels)
}

// TestMake_OutOfRange rejects objects outside the table domain.
func (s *StructureSuite) TestMake_OutOfRange() {
	st, err := fold.New(2, nil)
	require.NoError(s.T(), err)

	_, err = st.Make([]int{0, 3, 1})
	require.ErrorIs(s.T(), err, fold.ErrObjectOutOfRange)
	_, err = st.Fold(-1, 0)
	require.ErrorIs(s.T(), err, fold.ErrObjectOutOfRange)
}

// TestSet_RoundTrip verifies Set/Values reproduce the chromosome slice and
// reject out-of-range values.
func (s *StructureSuite) TestSet_RoundTrip() {
	st, err := fold.New(3, nil)
	require.NoError(s.T(), err)

	in := make([]int, st.Len())
	for i := range in {
		in[i] = (i * 7) % 4
	}
	require.NoError(s.T(), st.Set(in))
	require.Equal(s.T(), in, st.Values())

	in[0] = 4
	require.ErrorIs(s.T(), st.Set(in), table.ErrValueOutOfRange)
}

// TestMake_Deterministic checks Make is pure for fixed tables.
func (s *StructureSuite) TestMake_Deterministic() {
	st, err := fold.New(5, table.NewRand(77))
	require.NoError(s.T(), err)

	seq := []int{5, 4, 3, 2, 1, 0, 1, 2, 3}
	a, err := st.Make(seq)
	require.NoError(s.T(), err)
	b, err := st.Make(seq)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

// Entry point for running the suite.
func TestStructureSuite(t *testing.T) {
	suite.Run(t, new(StructureSuite))
}
