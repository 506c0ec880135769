package attention

// Policy picks at most one type out of a hierarchy level for one slot.
// level is never empty. Implementations must be pure and must return a value
// taken from level when ok is true.
type Policy interface {
	Select(level []int, anchor, probe int) (value int, ok bool)
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(level []int, anchor, probe int) (int, bool)

// Select calls f.
func (f PolicyFunc) Select(level []int, anchor, probe int) (int, bool) {
	return f(level, anchor, probe)
}

// AnchorSuccessor selects the type following the first occurrence of anchor,
// scanning cyclically from probe mod len(level).
//
// Complexity: O(len(level)).
type AnchorSuccessor struct{}

// Select implements Policy.
func (AnchorSuccessor) Select(level []int, anchor, probe int) (int, bool) {
	n := len(level)
	start := probe % n
	for k := 0; k < n; k++ {
		j := (start + k) % n
		if level[j] == anchor {
			return level[(j+1)%n], true
		}
	}

	return 0, false
}

// Positional ignores the anchor and selects level[probe mod len(level)]; every
// existing level populates every slot.
type Positional struct{}

// Select implements Policy.
func (Positional) Select(level []int, _, probe int) (int, bool) {
	return level[probe%len(level)], true
}
