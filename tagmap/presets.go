// SPDX-License-Identifier: MIT
// Package: domfuzz/tagmap
//
// presets.go — built-in tag maps and the name → TagMap registry.

package tagmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/domfuzz/random"
)

// Preset names.
const (
	Alexa  = "alexa"
	Simple = "simple"
)

// AlexaVersion identifies the revision of the embedded alexa asset. Bump it
// whenever presets/alexa.json changes: corpora generated from different
// revisions do not replay against each other.
const AlexaVersion = "2"

//go:embed presets/alexa.json
var alexaJSON []byte

var (
	presetsOnce sync.Once
	presets     map[string]*TagMap
)

func builtins() map[string]*TagMap {
	presetsOnce.Do(func() {
		alexa, err := Load(Alexa, bytes.NewReader(alexaJSON))
		if err != nil {
			// The asset is compiled in; a decode failure is a build defect.
			panic(fmt.Sprintf("tagmap: embedded %s preset: %v", Alexa, err))
		}

		simple, _ := New(Simple, map[string]*random.Weights{
			Root:  random.NewWeights(random.P("div", 1)),
			"div": random.NewWeights(random.P("div", 1)),
		})

		presets = map[string]*TagMap{Alexa: alexa, Simple: simple}
	})

	return presets
}

// Lookup returns the built-in tag map called name.
func Lookup(name string) (*TagMap, error) {
	if t, ok := builtins()[name]; ok {
		return t, nil
	}

	return nil, fmt.Errorf("Lookup: %q: %w", name, ErrUnknownTagMap)
}

// Names lists the built-in tag maps, sorted.
func Names() []string {
	return sortedKeys(builtins())
}

// Registry resolves tag map names, starting from the built-ins and extended
// with user-supplied maps. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	maps map[string]*TagMap
}

// NewRegistry returns a registry holding the built-in presets plus extra.
// A map in extra replaces a preset of the same name.
func NewRegistry(extra ...*TagMap) *Registry {
	r := &Registry{maps: make(map[string]*TagMap, len(builtins())+len(extra))}
	for name, t := range builtins() {
		r.maps[name] = t
	}
	for _, t := range extra {
		r.Register(t)
	}

	return r
}

// Register adds or replaces t under t.Name(). Panics if t is nil.
func (r *Registry) Register(t *TagMap) {
	if t == nil {
		panic("tagmap: Register(nil)")
	}
	r.mu.Lock()
	r.maps[t.Name()] = t
	r.mu.Unlock()
}

// Lookup resolves name; ErrUnknownTagMap if absent.
func (r *Registry) Lookup(name string) (*TagMap, error) {
	r.mu.RLock()
	t, ok := r.maps[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Registry.Lookup: %q: %w", name, ErrUnknownTagMap)
	}

	return t, nil
}

// Names lists registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.maps)
}

func sortedKeys(m map[string]*TagMap) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
