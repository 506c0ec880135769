package evolve_test

import (
	"context"
	"testing"

	"github.com/dblibaum/random-function-machine/evolve"
)

// BenchmarkRun_OneMax64 measures operator overhead on a cheap objective.
func BenchmarkRun_OneMax64(b *testing.B) {
	cfg := smallConfig(1)
	cfg.Generations = 10
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, err := evolve.New(binary(64), oneMax, cfg)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = g.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
