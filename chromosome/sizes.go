package chromosome

import "fmt"

// Sizes are the construction-time constants that fully determine the layout.
type Sizes struct {
	// Alphabet is the input symbol cardinality.
	Alphabet int `yaml:"alphabet" json:"alphabet"`
	// Objects bounds the object domain [0, Objects].
	Objects int `yaml:"objects" json:"objects"`
	// Types bounds the type domain [0, Types]; type 0 is the terminal signal.
	Types int `yaml:"types" json:"types"`
	// AttentionDepth is the number of hierarchy levels attended.
	AttentionDepth int `yaml:"attention_depth" json:"attention_depth"`
	// AttentionWidth is the number of slots per attended level.
	AttentionWidth int `yaml:"attention_width" json:"attention_width"`
	// Functions is the function bank size.
	Functions int `yaml:"functions" json:"functions"`
	// ComputerDepth is the number of function bank passes.
	ComputerDepth int `yaml:"computer_depth" json:"computer_depth"`
	// Outputs bounds the output symbol domain [0, Outputs].
	Outputs int `yaml:"outputs" json:"outputs"`
}

// MaxInput is the function bank's Path row width, equal to the attention
// parameter count.
func (s Sizes) MaxInput() int { return 2 * s.AttentionDepth * s.AttentionWidth }

// Validate reports the first violated constraint, wrapped in ErrInvalidSizes.
// Alphabet may not exceed Objects: input mapper values feed the FoldTable.
func (s Sizes) Validate() error {
	switch {
	case s.Alphabet < 1:
		return fmt.Errorf("alphabet must be ≥ 1, got %d: %w", s.Alphabet, ErrInvalidSizes)
	case s.Objects < 1:
		return fmt.Errorf("objects must be ≥ 1, got %d: %w", s.Objects, ErrInvalidSizes)
	case s.Alphabet > s.Objects:
		return fmt.Errorf("alphabet %d exceeds objects %d: %w", s.Alphabet, s.Objects, ErrInvalidSizes)
	case s.Types < 1:
		return fmt.Errorf("types must be ≥ 1, got %d: %w", s.Types, ErrInvalidSizes)
	case s.AttentionDepth < 1 || s.AttentionWidth < 1:
		return fmt.Errorf("attention shape must be ≥ 1×1, got %d×%d: %w", s.AttentionDepth, s.AttentionWidth, ErrInvalidSizes)
	case s.Functions < 1:
		return fmt.Errorf("functions must be ≥ 1, got %d: %w", s.Functions, ErrInvalidSizes)
	case s.ComputerDepth < 1:
		return fmt.Errorf("computer depth must be ≥ 1, got %d: %w", s.ComputerDepth, ErrInvalidSizes)
	case s.Outputs < 0:
		return fmt.Errorf("outputs must be ≥ 0, got %d: %w", s.Outputs, ErrInvalidSizes)
	}

	return nil
}
