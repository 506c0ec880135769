package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dblibaum/random-function-machine/chromosome"
	"github.com/dblibaum/random-function-machine/evolve"
)

// Config is one experiment.
type Config struct {
	Data       DataConfig    `yaml:"data"`
	Model      ModelConfig   `yaml:"model"`
	Evaluation EvalConfig    `yaml:"evaluation"`
	Evolution  evolve.Config `yaml:"evolution"`
}

// DataConfig selects and partitions the dataset.
type DataConfig struct {
	Path         string  `yaml:"path"`
	TestFraction float64 `yaml:"test_fraction"`
	DataFraction float64 `yaml:"data_fraction"`
}

// ModelConfig holds the pipeline sizes that are not derived from the data.
type ModelConfig struct {
	Objects        int   `yaml:"objects"`
	Types          int   `yaml:"types"`
	AttentionDepth int   `yaml:"attention_depth"`
	AttentionWidth int   `yaml:"attention_width"`
	Functions      int   `yaml:"functions"`
	ComputerDepth  int   `yaml:"computer_depth"`
	Seed           int64 `yaml:"seed"` // table initialization; 0 ⇒ default seed
}

// EvalConfig controls the fitness evaluator.
type EvalConfig struct {
	Stochastic    bool   `yaml:"stochastic"`
	BatchSize     int    `yaml:"batch_size"`
	ReportHeldOut bool   `yaml:"report_held_out"`
	SaveFile      string `yaml:"save_file"`
}

// Default returns the settings used for every field a file leaves out.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			TestFraction: 0.25,
			DataFraction: 1,
		},
		Model: ModelConfig{
			Objects:        64,
			Types:          16,
			AttentionDepth: 8,
			AttentionWidth: 4,
			Functions:      64,
			ComputerDepth:  8,
		},
		Evaluation: EvalConfig{
			Stochastic:    false,
			BatchSize:     100,
			ReportHeldOut: true,
			SaveFile:      "best_chromosome.json",
		},
		Evolution: evolve.DefaultConfig(),
	}
}

// Load reads path, overlays it on Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse overlays YAML data on Default and validates the result.
// An empty document yields the defaults (which still need a data path).
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w: %w", err, ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first unusable field, wrapped in ErrConfiguration.
func (c *Config) Validate() error {
	d, m, e := c.Data, c.Model, c.Evaluation
	switch {
	case d.Path == "":
		return fmt.Errorf("data.path is required: %w", ErrConfiguration)
	case d.TestFraction < 0 || d.TestFraction >= 1:
		return fmt.Errorf("data.test_fraction %v outside [0,1): %w", d.TestFraction, ErrConfiguration)
	case d.DataFraction <= 0 || d.DataFraction > 1:
		return fmt.Errorf("data.data_fraction %v outside (0,1]: %w", d.DataFraction, ErrConfiguration)
	case m.Objects < 1 || m.Types < 1 || m.Functions < 1:
		return fmt.Errorf("model objects/types/functions must be ≥ 1, got %d/%d/%d: %w",
			m.Objects, m.Types, m.Functions, ErrConfiguration)
	case m.AttentionDepth < 1 || m.AttentionWidth < 1 || m.ComputerDepth < 1:
		return fmt.Errorf("model attention depth/width and computer depth must be ≥ 1, got %d/%d/%d: %w",
			m.AttentionDepth, m.AttentionWidth, m.ComputerDepth, ErrConfiguration)
	case e.Stochastic && e.BatchSize < 1:
		return fmt.Errorf("evaluation.batch_size must be ≥ 1 when stochastic, got %d: %w", e.BatchSize, ErrConfiguration)
	case e.ReportHeldOut && d.TestFraction == 0:
		return fmt.Errorf("evaluation.report_held_out needs data.test_fraction > 0: %w", ErrConfiguration)
	case e.SaveFile == "":
		return fmt.Errorf("evaluation.save_file is required: %w", ErrConfiguration)
	}
	if err := c.Evolution.Validate(); err != nil {
		return fmt.Errorf("evolution: %w: %w", err, ErrConfiguration)
	}

	return nil
}

// Sizes combines the model settings with the data-derived alphabet size and
// output bound.
func (c *Config) Sizes(alphabet, outputs int) chromosome.Sizes {
	return chromosome.Sizes{
		Alphabet:       alphabet,
		Objects:        c.Model.Objects,
		Types:          c.Model.Types,
		AttentionDepth: c.Model.AttentionDepth,
		AttentionWidth: c.Model.AttentionWidth,
		Functions:      c.Model.Functions,
		ComputerDepth:  c.Model.ComputerDepth,
		Outputs:        outputs,
	}
}
