package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FeatureSeparator joins feature fields into one symbol sequence.
const FeatureSeparator = ","

// Record is one labeled example.
type Record struct {
	ID       string
	Target   int
	Features []string
}

// Symbols returns the feature fields joined by FeatureSeparator as runes.
func (r Record) Symbols() []rune {
	return []rune(strings.Join(r.Features, FeatureSeparator))
}

// LoadFile opens path and parses it with LoadCSV.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// LoadCSV parses rows of the form id,target,feature... from r.
//
// Errors:
//   - ErrMalformedRecord (wrapped with the line number) for short rows or bad targets.
//   - CSV syntax errors from encoding/csv.
func LoadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records []Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		if line == 1 && len(row) > 0 && strings.EqualFold(row[0], "id") {
			continue
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseRow converts one CSV row into a Record.
func parseRow(row []string) (Record, error) {
	if len(row) < 2 {
		return Record{}, fmt.Errorf("%d columns, want ≥ 2: %w", len(row), ErrMalformedRecord)
	}
	target, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil || target < 0 {
		return Record{}, fmt.Errorf("target %q: %w", row[1], ErrMalformedRecord)
	}
	id := strings.TrimSpace(row[0])
	if id == "" {
		id = uuid.NewString()
	}

	return Record{
		ID:       id,
		Target:   target,
		Features: append([]string(nil), row[2:]...),
	}, nil
}
