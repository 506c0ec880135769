package pipeline_test

import (
	"testing"

	"github.com/dblibaum/random-function-machine/chromosome"
	"github.com/dblibaum/random-function-machine/mapper"
	"github.com/dblibaum/random-function-machine/pipeline"
	"github.com/dblibaum/random-function-machine/table"
)

// benchPipeline builds a protein-scale pipeline.
func benchPipeline(b *testing.B) *pipeline.Pipeline {
	b.Helper()
	alpha := mapper.NewAlphabet()
	alpha.AddString("ACDEFGHIKLMNPQRSTVWY")
	p, err := pipeline.New(alpha, chromosome.Sizes{
		Objects:        100,
		Types:          20,
		AttentionDepth: 10,
		AttentionWidth: 8,
		Functions:      100,
		ComputerDepth:  10,
		Outputs:        5,
	}, pipeline.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	return p
}

// BenchmarkPredict_300 runs one forward pass over a 300-residue sequence.
func BenchmarkPredict_300(b *testing.B) {
	p := benchPipeline(b)
	rng := table.NewRand(2)
	symbols := []rune("ACDEFGHIKLMNPQRSTVWY")
	seq := make([]rune, 300)
	for i := range seq {
		seq[i] = symbols[rng.Intn(len(symbols))]
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Predict(seq); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecode measures a full chromosome overwrite.
func BenchmarkDecode(b *testing.B) {
	p := benchPipeline(b)
	genes := p.Layout().Random(table.NewRand(3))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Decode(genes); err != nil {
			b.Fatal(err)
		}
	}
}
