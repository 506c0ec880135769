package dataset

import (
	"math"
	"math/rand"

	"github.com/dblibaum/random-function-machine/mapper"
	"github.com/dblibaum/random-function-machine/table"
)

// Downsample keeps each record independently with probability fraction.
// fraction ≥ 1 returns a copy of records unchanged. Order is preserved.
func Downsample(records []Record, fraction float64, rng *rand.Rand) []Record {
	if fraction >= 1 {
		return append([]Record(nil), records...)
	}
	rng = table.OrDefault(rng)
	out := make([]Record, 0, int(float64(len(records))*fraction)+1)
	for _, r := range records {
		if rng.Float64() < fraction {
			out = append(out, r)
		}
	}

	return out
}

// Split cuts records into a leading training partition of
// round(len·(1−testFraction)) records and a held-out remainder.
// testFraction is clamped to [0, 1].
func Split(records []Record, testFraction float64) (train, test []Record) {
	testFraction = math.Max(0, math.Min(1, testFraction))
	n := int(math.Round(float64(len(records)) * (1 - testFraction)))

	return records[:n:n], records[n:]
}

// Sample draws n records uniformly with replacement. Empty input or n ≤ 0
// yields nil.
func Sample(records []Record, n int, rng *rand.Rand) []Record {
	if len(records) == 0 || n <= 0 {
		return nil
	}
	rng = table.OrDefault(rng)
	out := make([]Record, n)
	for i := range out {
		out[i] = records[rng.Intn(len(records))]
	}

	return out
}

// Alphabet collects every feature symbol in first-use order across records.
func Alphabet(records []Record) *mapper.Alphabet {
	a := mapper.NewAlphabet()
	for _, r := range records {
		for _, s := range r.Symbols() {
			a.Add(s)
		}
	}

	return a
}

// Outputs returns the largest target, the upper bound of the output domain.
func Outputs(records []Record) int {
	hi := 0
	for _, r := range records {
		if r.Target > hi {
			hi = r.Target
		}
	}

	return hi
}
