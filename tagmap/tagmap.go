// SPDX-License-Identifier: MIT
// Package: domfuzz/tagmap
//
// tagmap.go — TagMap type, construction, and decoding.

package tagmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/domfuzz/random"
)

const (
	// Root is the synthetic parent context of the top-level nodes.
	Root = "body"
	// Text is the child key meaning "emit a text node".
	Text = ""
)

// TagMap is a named parent → weighted-children table.
type TagMap struct {
	name     string
	children map[string]*random.Weights
}

// New validates children and builds a TagMap. The map is copied; Weights
// values are shared and must not be mutated afterwards.
// Returns ErrInvalidTagMap on an empty name and ErrInvalidWeight on a
// non-positive weight.
func New(name string, children map[string]*random.Weights) (*TagMap, error) {
	if name == "" {
		return nil, fmt.Errorf("New: empty name: %w", ErrInvalidTagMap)
	}

	cp := make(map[string]*random.Weights, len(children))
	for parent, w := range children {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("New(%s): parent %q: %w", name, parent, err)
		}
		cp[parent] = w
	}

	return &TagMap{name: name, children: cp}, nil
}

// Load decodes a tag map asset of shape {parent: {child: weight}} from r.
// Both JSON and YAML are accepted; child order follows the document.
func Load(name string, r io.Reader) (*TagMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", name, err)
	}

	var children map[string]*random.Weights
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		err = json.Unmarshal(trimmed, &children)
	} else {
		err = yaml.Unmarshal(data, &children)
	}
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %v: %w", name, err, ErrInvalidTagMap)
	}

	return New(name, children)
}

// Name returns the tag map's name (e.g. "alexa").
func (t *TagMap) Name() string {
	return t.name
}

// Children returns the weighted child table for parent. Absent parents yield
// an empty table, never nil.
func (t *TagMap) Children(parent string) *random.Weights {
	if w, ok := t.children[parent]; ok && w != nil {
		return w
	}

	return random.NewWeights()
}

// HasChildren reports whether tag has at least one child entry.
func (t *TagMap) HasChildren(tag string) bool {
	return t.children[tag].Len() > 0
}

// Parents returns all parent tags, sorted.
func (t *TagMap) Parents() []string {
	parents := make([]string, 0, len(t.children))
	for p := range t.children {
		parents = append(parents, p)
	}
	sort.Strings(parents)

	return parents
}

// MarshalJSON encodes the table as {parent: {child: weight}}.
func (t *TagMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.children)
}
