// Package registry loads the external law-identifier registry: the
// government-distributed CSV that maps a law number to its canonical
// law id and name. The file is Shift_JIS encoded and is transcoded on
// read.
package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Fixed column positions in the registry CSV. The header row names
// fifteen columns; only three are consumed.
const (
	columnLawNum = 1
	columnName   = 2
	columnLawID  = 11
)

// Entry is one registry row: the canonical id and name for a law
// number.
type Entry struct {
	ID   string
	Name string
}

// Registry is an in-memory lookup from law number to canonical
// identifier entry. It is loaded once and never mutated afterwards.
type Registry struct {
	byNum map[string]Entry
}

// Load reads a Shift_JIS encoded registry CSV from path. Rows too
// short to carry the id column are ignored. The header row is
// skipped.
func Load(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry %s: %w", path, err)
	}
	defer file.Close()

	reg, err := Read(transform.NewReader(file, japanese.ShiftJIS.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}
	return reg, nil
}

// Read parses registry rows from an already UTF-8 decoded stream.
func Read(r io.Reader) (*Registry, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1

	byNum := make(map[string]Entry)
	header := true

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse registry CSV: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(record) <= columnLawID {
			continue
		}
		byNum[record[columnLawNum]] = Entry{
			ID:   record[columnLawID],
			Name: record[columnName],
		}
	}

	return &Registry{byNum: byNum}, nil
}

// Lookup resolves a law number to its registry entry.
func (r *Registry) Lookup(lawNum string) (Entry, bool) {
	entry, ok := r.byNum[lawNum]
	return entry, ok
}

// Len returns the number of registry entries loaded.
func (r *Registry) Len() int {
	return len(r.byNum)
}
