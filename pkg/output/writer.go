// Package output writes the assembled law index as a JSON array,
// streaming one record at a time, and reads a previously written
// index back for downstream tooling.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/coolbeans/lawindex/pkg/law"
)

// Writer streams law records to a JSON array on disk. The opening
// bracket is written on creation, records are comma-separated as they
// arrive, and the closing bracket on Close. Records are never held in
// memory after being written.
type Writer struct {
	file    *os.File
	buf     *bufio.Writer
	written int
	closed  bool
}

// NewWriter creates (or truncates) the output file and opens the JSON
// array.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	buf := bufio.NewWriter(file)
	if _, err := buf.WriteString("[\n"); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return &Writer{file: file, buf: buf}, nil
}

// Write appends one record to the array.
func (w *Writer) Write(record law.LawRecord) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode law record %s: %w", record.ID, err)
	}

	if w.written > 0 {
		if _, err := w.buf.WriteString(",\n"); err != nil {
			return fmt.Errorf("failed to write law record %s: %w", record.ID, err)
		}
	}
	if _, err := w.buf.Write(encoded); err != nil {
		return fmt.Errorf("failed to write law record %s: %w", record.ID, err)
	}

	w.written++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	return w.written
}

// Close terminates the array and flushes the file. Safe to call once.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if _, err := w.buf.WriteString("\n]\n"); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to finalize output file: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return w.file.Close()
}

// ReadIndex loads a previously written index file back into memory.
func ReadIndex(path string) ([]law.LawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", path, err)
	}

	var records []law.LawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode index %s: %w", path, err)
	}
	return records, nil
}
