package chromosome

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes genes to path as a JSON array, replacing the file atomically.
func Save(path string, genes []int) error {
	data, err := json.Marshal(genes)
	if err != nil {
		return fmt.Errorf("chromosome: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("chromosome: save %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chromosome: save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("chromosome: save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("chromosome: save %s: %w", path, err)
	}

	return nil
}

// Load reads a genome written by Save. The result is not validated against
// any layout; callers decode it through a pipeline.
func Load(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chromosome: load %s: %w", path, err)
	}
	var genes []int
	if err = json.Unmarshal(data, &genes); err != nil {
		return nil, fmt.Errorf("chromosome: load %s: %v: %w", path, err, ErrInvalidChromosome)
	}

	return genes, nil
}
