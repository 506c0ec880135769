package fitness

import "github.com/dblibaum/random-function-machine/chromosome"

// Store persists the best chromosome seen so far.
type Store interface {
	Save(genes []int) error
}

// FileStore writes chromosomes to Path with chromosome.Save, replacing the
// previous best.
type FileStore struct {
	Path string
}

// Save implements Store.
func (s FileStore) Save(genes []int) error { return chromosome.Save(s.Path, genes) }
