package metadata

import (
	"encoding/json"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Envelope pairs a payload with its tags.
type Envelope struct {
	Tags *orderedmap.OrderedMap[string, any] `json:"tags"`
	Data string                              `json:"data"`
}

// NewEnvelope attaches the tags of r to data. With keys, only those tags are
// kept, in the order given; unknown keys are skipped.
func NewEnvelope(r Record, data string, keys ...string) Envelope {
	all := r.Tags()
	if len(keys) == 0 {
		return Envelope{Tags: all, Data: data}
	}

	picked := orderedmap.New[string, any](len(keys))
	for _, k := range keys {
		if v, ok := all.Get(k); ok {
			picked.Set(k, v)
		}
	}

	return Envelope{Tags: picked, Data: data}
}

// Tag returns the value of a decoded or constructed tag.
func (e Envelope) Tag(name string) (any, bool) {
	if e.Tags == nil {
		return nil, false
	}

	return e.Tags.Get(name)
}

// JSONLWriter writes one Envelope per line.
type JSONLWriter struct {
	enc *json.Encoder
}

// NewJSONLWriter returns a writer on w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return &JSONLWriter{enc: enc}
}

// Write encodes e followed by a newline.
func (w *JSONLWriter) Write(e Envelope) error {
	if err := w.enc.Encode(e); err != nil {
		return fmt.Errorf("JSONLWriter.Write: %w", err)
	}

	return nil
}

// ReadEnvelopes decodes a JSON lines stream.
func ReadEnvelopes(r io.Reader) ([]Envelope, error) {
	dec := json.NewDecoder(r)
	var out []Envelope
	for {
		var e Envelope
		if err := dec.Decode(&e); err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, fmt.Errorf("ReadEnvelopes: line %d: %w", len(out)+1, err)
		}
		out = append(out, e)
	}
}
