package evolve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dblibaum/random-function-machine/chromosome"
	"github.com/dblibaum/random-function-machine/evolve"
)

// binary returns n genes in [0,1].
func binary(n int) []chromosome.Range {
	r := make([]chromosome.Range, n)
	for i := range r {
		r[i] = chromosome.Range{Min: 0, Max: 1}
	}

	return r
}

// oneMax scores a genome by its gene sum.
func oneMax(genes []int) (float64, error) {
	var s float64
	for _, g := range genes {
		s += float64(g)
	}

	return s, nil
}

// smallConfig keeps tests fast.
func smallConfig(seed int64) evolve.Config {
	cfg := evolve.DefaultConfig()
	cfg.Population = 20
	cfg.Generations = 15
	cfg.MutationRate = 0.05
	cfg.Seed = seed

	return cfg
}

// TestNew_Errors covers argument validation.
func TestNew_Errors(t *testing.T) {
	_, err := evolve.New(nil, oneMax, evolve.DefaultConfig())
	assert.ErrorIs(t, err, evolve.ErrEmptyGenome)

	_, err = evolve.New([]chromosome.Range{{Min: 2, Max: 1}}, oneMax, evolve.DefaultConfig())
	assert.ErrorIs(t, err, evolve.ErrBadRange)

	_, err = evolve.New(binary(3), nil, evolve.DefaultConfig())
	assert.ErrorIs(t, err, evolve.ErrNilFitness)

	bad := evolve.DefaultConfig()
	bad.Population = 1
	_, err = evolve.New(binary(3), oneMax, bad)
	assert.ErrorIs(t, err, evolve.ErrBadConfig)

	assert.Panics(t, func() { evolve.OnGeneration(nil) })
}

// TestConfig_Validate checks every rejected field.
func TestConfig_Validate(t *testing.T) {
	require.NoError(t, evolve.DefaultConfig().Validate())

	cases := map[string]func(*evolve.Config){
		"population":  func(c *evolve.Config) { c.Population = 0 },
		"generations": func(c *evolve.Config) { c.Generations = -1 },
		"crossover":   func(c *evolve.Config) { c.CrossoverRate = 1.5 },
		"mutation":    func(c *evolve.Config) { c.MutationRate = -0.1 },
		"elitism":     func(c *evolve.Config) { c.Elitism = c.Population },
		"tournament":  func(c *evolve.Config) { c.TournamentSize = 0 },
	}
	for name, mut := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := evolve.DefaultConfig()
			mut(&cfg)
			assert.ErrorIs(t, cfg.Validate(), evolve.ErrBadConfig)
		})
	}
}

// TestRun_Deterministic: same seed ⇒ identical result.
func TestRun_Deterministic(t *testing.T) {
	run := func(seed int64) evolve.Result {
		g, err := evolve.New(binary(16), oneMax, smallConfig(seed))
		require.NoError(t, err)
		res, err := g.Run(context.Background())
		require.NoError(t, err)

		return res
	}

	assert.Equal(t, run(7), run(7))
}

// TestRun_GenesStayInRange never lets an operator leave a gene's range.
func TestRun_GenesStayInRange(t *testing.T) {
	ranges := []chromosome.Range{{Min: 0, Max: 0}, {Min: 3, Max: 9}, {Min: -2, Max: 2}, {Min: 0, Max: 100}}
	var violations int
	fn := func(genes []int) (float64, error) {
		for i, r := range ranges {
			if genes[i] < r.Min || genes[i] > r.Max {
				violations++
			}
		}

		return float64(genes[1] + genes[3]), nil
	}

	cfg := smallConfig(3)
	cfg.MutationRate = 0.5
	g, err := evolve.New(ranges, fn, cfg)
	require.NoError(t, err)
	res, err := g.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, violations)
	assert.Len(t, res.Best.Genes, len(ranges))
}

// TestRun_ElitismMonotone: with elites kept, per-generation best never drops,
// and observers see every generation including the initial one.
func TestRun_ElitismMonotone(t *testing.T) {
	var seen []evolve.Stats
	g, err := evolve.New(binary(24), oneMax, smallConfig(11),
		evolve.OnGeneration(func(s evolve.Stats) { seen = append(seen, s) }))
	require.NoError(t, err)

	res, err := g.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.History, 16)
	assert.Equal(t, res.History, seen)
	assert.Equal(t, 15, res.Generations)
	for i := 1; i < len(res.History); i++ {
		require.GreaterOrEqual(t, res.History[i].Best, res.History[i-1].Best)
		require.LessOrEqual(t, res.History[i].Worst, res.History[i].Mean)
		require.LessOrEqual(t, res.History[i].Mean, res.History[i].Best)
	}
	assert.Equal(t, res.History[len(res.History)-1].Best, res.Best.Fitness)
	assert.Greater(t, res.Best.Fitness, res.History[0].Mean)
}

// TestRun_Cancel stops between evaluations and reports the context error.
func TestRun_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := evolve.New(binary(8), oneMax, smallConfig(5),
		evolve.OnGeneration(func(s evolve.Stats) {
			if s.Generation == 2 {
				cancel()
			}
		}))
	require.NoError(t, err)

	res, err := g.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, res.Generations)
	assert.NotNil(t, res.Best.Genes)
}

// TestRun_FitnessError aborts on the first failing evaluation.
func TestRun_FitnessError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	g, err := evolve.New(binary(4), func([]int) (float64, error) {
		calls++
		if calls == 5 {
			return 0, boom
		}

		return 1, nil
	}, smallConfig(1))
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 5, calls)
}
