// Package dataset loads labeled symbol sequences and partitions them for
// evaluation.
//
// 📄 CSV format (one example per row, no quoting beyond RFC 4180):
//
//	id,target,feature1,feature2,...
//
// The id may be empty, in which case a random UUID is assigned. The target is
// a non-negative integer class label. Features are joined with "," and read as
// a rune sequence by Record.Symbols. A leading header row whose first column is
// "id" is skipped.
//
// ⚙️ Partitioning mirrors the experiment flow:
//
//	records = Downsample(records, dataFraction, rng)
//	train, test := Split(records, testFraction)
//	batch := Sample(train, batchSize, rng)
//
// All randomness comes from the injected *rand.Rand (nil ⇒ table.DefaultSeed).
package dataset
