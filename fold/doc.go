// Package fold builds the symbol hierarchy of the random function machine.
//
// A Structure owns one FoldTable: a lookup from every unordered pair of
// objects {i, j} (0 ≤ i ≤ j ≤ nObjects, self-pairs included) to a single
// object in [0, nObjects]. Make repeatedly folds a sequence by replacing each
// adjacent pair with its table entry:
//
//	level[k] = Fold(dim[k], dim[k+1])   for k in [0, len(dim)-2)
//
// Each level is two shorter than its predecessor: the final adjacent pair
// is dropped, not merged. Folding stops once a level has length ≤ 1, so a
// sequence of length L yields levels of lengths L-2, L-4, … ending at 0 or 1.
//
// Key enumeration (chromosome order): i ascending, then j ascending from i.
//
//	index(i, j) = i·n − i·(i−1)/2 + (j − i),   n = nObjects + 1,  i ≤ j
//
// so the table holds n·(n+1)/2 entries and {i,j}, {j,i} share one slot.
package fold
