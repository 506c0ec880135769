package evolve

import "fmt"

// Config controls one optimization run.
type Config struct {
	Population     int     `yaml:"population" json:"population"`
	Generations    int     `yaml:"generations" json:"generations"`
	CrossoverRate  float64 `yaml:"crossover_rate" json:"crossover_rate"`
	MutationRate   float64 `yaml:"mutation_rate" json:"mutation_rate"`
	Elitism        int     `yaml:"elitism" json:"elitism"`
	TournamentSize int     `yaml:"tournament_size" json:"tournament_size"`
	Seed           int64   `yaml:"seed" json:"seed"` // 0 ⇒ table.DefaultSeed
}

// DefaultConfig returns the classic simple-GA settings: 80 individuals,
// 100 generations, 0.9 crossover, 0.02 per-gene mutation, one elite.
func DefaultConfig() Config {
	return Config{
		Population:     80,
		Generations:    100,
		CrossoverRate:  0.9,
		MutationRate:   0.02,
		Elitism:        1,
		TournamentSize: 3,
		Seed:           0,
	}
}

// Validate reports the first unusable field, wrapped in ErrBadConfig.
//
// Complexity: O(1).
func (c Config) Validate() error {
	switch {
	case c.Population < 2:
		return fmt.Errorf("population must be ≥ 2, got %d: %w", c.Population, ErrBadConfig)
	case c.Generations < 0:
		return fmt.Errorf("generations must be ≥ 0, got %d: %w", c.Generations, ErrBadConfig)
	case c.CrossoverRate < 0 || c.CrossoverRate > 1:
		return fmt.Errorf("crossover rate %v outside [0,1]: %w", c.CrossoverRate, ErrBadConfig)
	case c.MutationRate < 0 || c.MutationRate > 1:
		return fmt.Errorf("mutation rate %v outside [0,1]: %w", c.MutationRate, ErrBadConfig)
	case c.Elitism < 0 || c.Elitism >= c.Population:
		return fmt.Errorf("elitism %d outside [0,%d): %w", c.Elitism, c.Population, ErrBadConfig)
	case c.TournamentSize < 1:
		return fmt.Errorf("tournament size must be ≥ 1, got %d: %w", c.TournamentSize, ErrBadConfig)
	}

	return nil
}
