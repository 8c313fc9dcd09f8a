// Package importer turns uploaded CSV streams into raw field-mapped rows
// for the catalog and client batch-insert paths. Parsing never aborts the
// batch: a malformed row is carried through as a row-level error so the
// caller can report per-row outcomes.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row is one source row keyed by header name
type Row struct {
	Line   int               // 1-based line number in the source file
	Fields map[string]string // Header name -> trimmed cell value
	Err    error             // Set when the row could not be parsed
}

// Result is the per-row outcome of a batch insert
type Result struct {
	Line  int    `json:"line"`            // Source line number
	ID    uint   `json:"id,omitempty"`    // Created record id on success
	Error string `json:"error,omitempty"` // Failure reason, empty on success
}

// Parse reads a CSV stream with a mandatory header row. Rows with the
// wrong field count come back with Err set instead of failing the parse.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []Row
	line := 1 // Header consumed
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		row := Row{Line: line, Fields: make(map[string]string, len(header))}
		if err != nil {
			row.Err = err // Ragged or malformed row; keep going
			rows = append(rows, row)
			continue
		}
		for i, name := range header {
			if i < len(record) {
				row.Fields[name] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Get returns the named field, tolerating a missing key
func (r Row) Get(name string) string {
	return r.Fields[name]
}
