package evolve

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/dblibaum/random-function-machine/chromosome"
	"github.com/dblibaum/random-function-machine/table"
)

// FitnessFunc scores a genome; larger is better. A non-nil error aborts Run.
type FitnessFunc func(genes []int) (float64, error)

// Individual is one genome and its score.
type Individual struct {
	Genes   []int
	Fitness float64
}

// Stats summarizes one evaluated generation. Generation 0 is the initial population.
type Stats struct {
	Generation int
	Best       float64
	Mean       float64
	Worst      float64
}

// Result is the outcome of Run.
type Result struct {
	Best        Individual
	Generations int // completed generations, excluding the initial population
	History     []Stats
}

// GA is a configured genetic algorithm. It is not safe for concurrent Run calls.
type GA struct {
	ranges    []chromosome.Range
	fitness   FitnessFunc
	cfg       Config
	observers []func(Stats)
	rng       *rand.Rand
}

// New validates its inputs and returns a ready GA.
//
// Errors: ErrEmptyGenome, ErrBadRange, ErrNilFitness, ErrBadConfig (all wrapped
// with context where useful).
func New(ranges []chromosome.Range, fn FitnessFunc, cfg Config, opts ...Option) (*GA, error) {
	if len(ranges) == 0 {
		return nil, ErrEmptyGenome
	}
	for i, r := range ranges {
		if r.Min > r.Max {
			return nil, fmt.Errorf("gene %d [%d,%d]: %w", i, r.Min, r.Max, ErrBadRange)
		}
	}
	if fn == nil {
		return nil, ErrNilFitness
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &GA{
		ranges:  append([]chromosome.Range(nil), ranges...),
		fitness: fn,
		cfg:     cfg,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Run evolves the population and returns the fittest individual seen.
// Cancellation is checked between evaluations; on cancellation Run returns
// the best result so far together with ctx.Err().
func (g *GA) Run(ctx context.Context) (Result, error) {
	g.rng = table.NewRand(g.cfg.Seed)

	var res Result
	pop := make([]Individual, g.cfg.Population)
	for i := range pop {
		pop[i].Genes = g.randomGenes()
	}
	if err := g.evaluate(ctx, pop, &res); err != nil {
		return res, err
	}
	g.report(0, pop, &res)

	for gen := 1; gen <= g.cfg.Generations; gen++ {
		next := g.breed(pop)
		if err := g.evaluate(ctx, next[g.cfg.Elitism:], &res); err != nil {
			return res, err
		}
		pop = next
		res.Generations = gen
		g.report(gen, pop, &res)
	}

	return res, nil
}

// evaluate scores every individual in order and tracks the overall best.
func (g *GA) evaluate(ctx context.Context, pop []Individual, res *Result) error {
	for i := range pop {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := g.fitness(pop[i].Genes)
		if err != nil {
			return fmt.Errorf("evolve: fitness: %w", err)
		}
		pop[i].Fitness = f
		if res.Best.Genes == nil || f > res.Best.Fitness {
			res.Best = Individual{Genes: append([]int(nil), pop[i].Genes...), Fitness: f}
		}
	}

	return nil
}

// breed builds the next population: elites first, then offspring.
// pop must already be evaluated.
func (g *GA) breed(pop []Individual) []Individual {
	ranked := append([]Individual(nil), pop...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Fitness > ranked[j].Fitness })

	next := make([]Individual, 0, len(pop))
	for i := 0; i < g.cfg.Elitism; i++ {
		next = append(next, ranked[i])
	}
	for len(next) < len(pop) {
		a := g.tournament(pop).Genes
		b := g.tournament(pop).Genes
		c1, c2 := g.crossover(a, b)
		g.mutate(c1)
		next = append(next, Individual{Genes: c1})
		if len(next) < len(pop) {
			g.mutate(c2)
			next = append(next, Individual{Genes: c2})
		}
	}

	return next
}

// report computes Stats for pop, records them and notifies observers.
func (g *GA) report(gen int, pop []Individual, res *Result) {
	st := Stats{Generation: gen, Best: pop[0].Fitness, Worst: pop[0].Fitness}
	var sum float64
	for _, ind := range pop {
		sum += ind.Fitness
		if ind.Fitness > st.Best {
			st.Best = ind.Fitness
		}
		if ind.Fitness < st.Worst {
			st.Worst = ind.Fitness
		}
	}
	st.Mean = sum / float64(len(pop))

	res.History = append(res.History, st)
	for _, fn := range g.observers {
		fn(st)
	}
}
