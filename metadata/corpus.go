// SPDX-License-Identifier: MIT
// Package: domfuzz/metadata
//
// corpus.go — msgpack stream of complete fixtures.

package metadata

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// CorpusSchema is the current Entry layout version; increment when Entry
// changes.
const CorpusSchema uint16 = 1

// ErrCorpusSchema indicates an entry written by an incompatible version.
var ErrCorpusSchema = errors.New("metadata: unsupported corpus schema")

// Entry is one fixture as stored in a corpus.
type Entry struct {
	Schema uint16 `msgpack:"schema"`
	Record Record `msgpack:"record"`
	HTML   string `msgpack:"html"`
	CSS    string `msgpack:"css,omitempty"`
}

// CorpusWriter appends entries to a msgpack stream.
type CorpusWriter struct {
	enc *msgpack.Encoder
	n   int
}

// NewCorpusWriter returns a writer on w.
func NewCorpusWriter(w io.Writer) *CorpusWriter {
	return &CorpusWriter{enc: msgpack.NewEncoder(w)}
}

// Append stamps e with CorpusSchema and encodes it.
func (c *CorpusWriter) Append(e Entry) error {
	e.Schema = CorpusSchema
	if err := c.enc.Encode(&e); err != nil {
		return fmt.Errorf("CorpusWriter.Append: entry %d: %w", c.n, err)
	}
	c.n++

	return nil
}

// Len returns the number of entries appended so far.
func (c *CorpusWriter) Len() int {
	return c.n
}

// CorpusReader decodes entries from a msgpack stream.
type CorpusReader struct {
	dec *msgpack.Decoder
	n   int
}

// NewCorpusReader returns a reader on r.
func NewCorpusReader(r io.Reader) *CorpusReader {
	return &CorpusReader{dec: msgpack.NewDecoder(r)}
}

// Next decodes the next entry. It returns io.EOF after the last one.
func (c *CorpusReader) Next() (Entry, error) {
	var e Entry
	if err := c.dec.Decode(&e); err != nil {
		if errors.Is(err, io.EOF) {
			return Entry{}, io.EOF
		}
		return Entry{}, fmt.Errorf("CorpusReader.Next: entry %d: %w", c.n, err)
	}
	if e.Schema != CorpusSchema {
		return Entry{}, fmt.Errorf("CorpusReader.Next: entry %d: schema %d: %w", c.n, e.Schema, ErrCorpusSchema)
	}
	c.n++

	return e, nil
}

// ReadCorpus decodes every entry of r.
func ReadCorpus(r io.Reader) ([]Entry, error) {
	cr := NewCorpusReader(r)
	var out []Entry
	for {
		e, err := cr.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
}
