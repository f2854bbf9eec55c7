// SPDX-License-Identifier: MIT
// Package: domfuzz/random
//
// weights.go — insertion-ordered name → weight map.
//
// Iteration order is the determinism anchor for WeightedChoice: keys are
// visited in the order they were first inserted (or decoded). Decoding from
// JSON or YAML preserves document order.

package random

import (
	"fmt"
	"iter"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Pair is one Weights entry.
type Pair struct {
	Key    string
	Weight float64
}

// P is shorthand for Pair{Key: key, Weight: weight}.
func P(key string, weight float64) Pair {
	return Pair{Key: key, Weight: weight}
}

// Weights is an insertion-ordered map from candidate name to weight.
// The zero value and a nil *Weights are empty and ready for reads.
type Weights struct {
	m *orderedmap.OrderedMap[string, float64]
}

// NewWeights builds a Weights holding pairs in the given order. A repeated key
// keeps its first position and takes the last weight.
func NewWeights(pairs ...Pair) *Weights {
	w := &Weights{m: orderedmap.New[string, float64](len(pairs))}
	for _, p := range pairs {
		w.m.Set(p.Key, p.Weight)
	}

	return w
}

// Set inserts or updates key and returns w for chaining.
func (w *Weights) Set(key string, weight float64) *Weights {
	if w.m == nil {
		w.m = orderedmap.New[string, float64]()
	}
	w.m.Set(key, weight)

	return w
}

// Get returns the weight stored for key.
func (w *Weights) Get(key string) (float64, bool) {
	if w == nil || w.m == nil {
		return 0, false
	}

	return w.m.Get(key)
}

// Len returns the number of entries.
func (w *Weights) Len() int {
	if w == nil || w.m == nil {
		return 0
	}

	return w.m.Len()
}

// All iterates entries in insertion order.
func (w *Weights) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		if w == nil || w.m == nil {
			return
		}
		for pair := w.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (w *Weights) Keys() []string {
	keys := make([]string, 0, w.Len())
	for key := range w.All() {
		keys = append(keys, key)
	}

	return keys
}

// Total returns the sum of all weights, accumulated in insertion order.
func (w *Weights) Total() float64 {
	var total float64
	for _, weight := range w.All() {
		total += weight
	}

	return total
}

// Validate reports the first entry whose weight is not a finite value > 0.
func (w *Weights) Validate() error {
	for key, weight := range w.All() {
		if !(weight > 0) || math.IsInf(weight, 0) {
			return errorf("Weights", "key %q has weight %g: %w", key, weight, ErrInvalidWeight)
		}
	}

	return nil
}

// MarshalJSON encodes w as a JSON object in insertion order.
func (w *Weights) MarshalJSON() ([]byte, error) {
	if w == nil || w.m == nil {
		return []byte("{}"), nil
	}

	return w.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping document key order.
func (w *Weights) UnmarshalJSON(data []byte) error {
	w.m = orderedmap.New[string, float64]()

	return w.m.UnmarshalJSON(data)
}

// UnmarshalYAML decodes a YAML mapping, keeping document key order.
func (w *Weights) UnmarshalYAML(node *yaml.Node) error {
	w.m = orderedmap.New[string, float64]()
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: weights must be a mapping", node.Line)
	}

	var (
		i      int
		key    string
		weight float64
	)
	for i = 0; i+1 < len(node.Content); i += 2 {
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: %w", node.Content[i].Line, err)
		}
		if err := node.Content[i+1].Decode(&weight); err != nil {
			return fmt.Errorf("line %d: weight for %q: %w", node.Content[i+1].Line, key, err)
		}
		w.m.Set(key, weight)
	}

	return nil
}
