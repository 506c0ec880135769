// Package chromosome defines the flat integer genome of the random function
// machine and its exact slicing into each stage's lookup tables.
//
// The layout is pure arithmetic over Sizes; it never looks at gene values.
// Segments, in order:
//
//	segment    length                          gene range
//	input      Alphabet                        [0, Alphabet]
//	fold       (Objects+1)(Objects+2)/2        [0, Objects]
//	type       Objects+1                       [0, Types]
//	attention  2·AttentionDepth·AttentionWidth [0, Types]
//	path       ComputerDepth·MaxInput          [0, Functions−1]
//	output     Types+1                         [0, Outputs]
//
// where MaxInput = 2·AttentionDepth·AttentionWidth.
//
// Decoding is fail-fast: a genome of the wrong length, or with any gene
// outside its segment's range, is rejected with ErrInvalidChromosome before
// any stage is touched. There is no truncation and no wrapping.
//
// Save and Load persist a genome as a bare JSON array of integers.
package chromosome
