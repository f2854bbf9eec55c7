// SPDX-License-Identifier: MIT
// Package: domfuzz/metadata
//
// csv.go — amalgamates records into one CSV table.

package metadata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownColumn indicates a record carrying a tag absent from the header
// already written.
var ErrUnknownColumn = errors.New("metadata: tag not in CSV header")

// CSVWriter writes one row per Record. Columns are fixed by the first row:
// either the explicit list passed to NewCSVWriter or every scalar tag of the
// first record, in tag order. The header is written once.
type CSVWriter struct {
	w        *csv.Writer
	columns  []string
	index    map[string]int
	implicit bool
	header   bool
}

// NewCSVWriter writes to w. With columns, only those tags are emitted and
// extra tags are ignored.
func NewCSVWriter(w io.Writer, columns ...string) *CSVWriter {
	c := &CSVWriter{w: csv.NewWriter(w)}
	if len(columns) > 0 {
		c.setColumns(columns)
	}

	return c
}

func (c *CSVWriter) setColumns(columns []string) {
	c.columns = append([]string(nil), columns...)
	c.index = make(map[string]int, len(columns))
	for i, name := range c.columns {
		c.index[name] = i
	}
}

// Columns returns the header, nil before the first Write of an implicit
// header.
func (c *CSVWriter) Columns() []string {
	return c.columns
}

// Write appends r as a row. Under an implicit header the ids list is left
// out, and a tag the first record lacked fails with ErrUnknownColumn.
// Missing tags leave empty cells.
func (c *CSVWriter) Write(r Record) error {
	tags := r.Tags()

	if c.columns == nil {
		tags.Delete(TagIDs)
		cols := make([]string, 0, tags.Len())
		for p := tags.Oldest(); p != nil; p = p.Next() {
			cols = append(cols, p.Key)
		}
		c.setColumns(cols)
		c.implicit = true
	} else if c.implicit {
		tags.Delete(TagIDs)
	}

	if !c.header {
		if err := c.w.Write(c.columns); err != nil {
			return fmt.Errorf("CSVWriter.Write: header: %w", err)
		}
		c.header = true
	}

	row := make([]string, len(c.columns))
	for p := tags.Oldest(); p != nil; p = p.Next() {
		i, ok := c.index[p.Key]
		if !ok {
			if c.implicit {
				return fmt.Errorf("CSVWriter.Write: %q: %w", p.Key, ErrUnknownColumn)
			}
			continue
		}
		row[i] = formatTag(p.Value)
	}
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("CSVWriter.Write: %w", err)
	}

	return nil
}

// Flush flushes buffered rows and reports any write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()

	return c.w.Error()
}
