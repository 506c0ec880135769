package evolve

import "github.com/dblibaum/random-function-machine/table"

// randomGenes draws one genome uniformly inside the gene ranges.
func (g *GA) randomGenes() []int {
	genes := make([]int, len(g.ranges))
	for i := range genes {
		genes[i] = g.allele(i)
	}

	return genes
}

// allele draws a value for gene i uniformly from its range.
func (g *GA) allele(i int) int {
	r := g.ranges[i]

	return r.Min + table.Uniform(g.rng, r.Max-r.Min)
}

// tournament returns the fittest of k uniformly drawn individuals (with
// replacement); ties go to the earliest draw.
func (g *GA) tournament(pop []Individual) Individual {
	k := g.cfg.TournamentSize
	if k > len(pop) {
		k = len(pop)
	}
	best := pop[g.rng.Intn(len(pop))]
	for i := 1; i < k; i++ {
		c := pop[g.rng.Intn(len(pop))]
		if c.Fitness > best.Fitness {
			best = c
		}
	}

	return best
}

// crossover returns two fresh children. With probability CrossoverRate the
// parents swap tails at a cut in [1, L−1]; otherwise the children are copies.
func (g *GA) crossover(a, b []int) ([]int, []int) {
	c1 := append([]int(nil), a...)
	c2 := append([]int(nil), b...)
	if len(a) < 2 || g.rng.Float64() >= g.cfg.CrossoverRate {
		return c1, c2
	}
	cut := 1 + g.rng.Intn(len(a)-1)
	copy(c1[cut:], b[cut:])
	copy(c2[cut:], a[cut:])

	return c1, c2
}

// mutate redraws each gene from its range with probability MutationRate.
func (g *GA) mutate(genes []int) {
	if g.cfg.MutationRate == 0 {
		return
	}
	for i := range genes {
		if g.rng.Float64() < g.cfg.MutationRate {
			genes[i] = g.allele(i)
		}
	}
}
