package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/domfuzz/config"
	"github.com/katalvlaran/domfuzz/fixture"
	"github.com/katalvlaran/domfuzz/metadata"
)

// batchWriter persists delivered fixtures in one output format.
type batchWriter interface {
	write(i int, f *fixture.Fixture) error
	// path names what was written, for the summary line.
	path() string
	close() error
}

func newBatchWriter(format, dir string) (batchWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	switch format {
	case config.FormatJSONL:
		s, err := createStream(filepath.Join(dir, "fixtures.jsonl"))
		if err != nil {
			return nil, err
		}
		jw := metadata.NewJSONLWriter(s.buf)
		s.writeFn = func(_ int, f *fixture.Fixture) error {
			return jw.Write(metadata.NewEnvelope(f.Metadata, f.Document))
		}
		return s, nil

	case config.FormatCSV:
		s, err := createStream(filepath.Join(dir, "fixtures.csv"))
		if err != nil {
			return nil, err
		}
		cw := metadata.NewCSVWriter(s.buf)
		s.writeFn = func(_ int, f *fixture.Fixture) error { return cw.Write(f.Metadata) }
		s.flushFn = cw.Flush
		return s, nil

	case config.FormatMsgpack:
		s, err := createStream(filepath.Join(dir, "corpus.msgpack"))
		if err != nil {
			return nil, err
		}
		cw := metadata.NewCorpusWriter(s.buf)
		s.writeFn = func(_ int, f *fixture.Fixture) error {
			return cw.Append(metadata.Entry{
				Schema: metadata.CorpusSchema,
				Record: f.Metadata,
				HTML:   f.HTML,
				CSS:    f.CSS,
			})
		}
		return s, nil

	case config.FormatHTML:
		return &htmlFiles{dir: dir}, nil
	}

	return nil, fmt.Errorf("unknown output format %q", format)
}

// stream writes every fixture to one buffered file.
type stream struct {
	file    *os.File
	buf     *bufio.Writer
	writeFn func(int, *fixture.Fixture) error
	flushFn func() error
}

func createStream(path string) (*stream, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &stream{file: f, buf: bufio.NewWriter(f)}, nil
}

func (s *stream) write(i int, f *fixture.Fixture) error { return s.writeFn(i, f) }

func (s *stream) path() string { return s.file.Name() }

func (s *stream) close() error {
	var err error
	if s.flushFn != nil {
		err = s.flushFn()
	}
	if ferr := s.buf.Flush(); err == nil {
		err = ferr
	}
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}

	return err
}

// htmlFiles writes one standalone document per fixture, named by sample
// index and replay tuple.
type htmlFiles struct {
	dir string
}

func htmlFileName(i int, md metadata.Record) string {
	return fmt.Sprintf("%05d-%s-b%d-d%d-s%d.html", i, md.TagMap, md.Branchiness, md.Depthicity, md.Seed)
}

func (h *htmlFiles) write(i int, f *fixture.Fixture) error {
	return os.WriteFile(filepath.Join(h.dir, htmlFileName(i, f.Metadata)), []byte(f.Document+"\n"), 0o644)
}

func (h *htmlFiles) path() string { return h.dir }

func (h *htmlFiles) close() error { return nil }
