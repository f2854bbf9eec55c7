// SPDX-License-Identifier: MIT
// Package: domfuzz/config
//
// experiment.go — batch experiment documents (YAML or JSON).

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/sampler"
	"github.com/katalvlaran/domfuzz/tagmap"
)

// ErrInvalidExperiment indicates an experiment that cannot drive a batch.
var ErrInvalidExperiment = errors.New("config: invalid experiment")

// Experiment is one batch description.
type Experiment struct {
	DOM    DOMArgs  `yaml:"domArgs" json:"domArgs"`
	CSS    *CSSArgs `yaml:"cssArgs,omitempty" json:"cssArgs,omitempty"`
	Indent string   `yaml:"indent,omitempty" json:"indent,omitempty"`
}

// DOMArgs drive the parameter sampler.
type DOMArgs struct {
	Seed           uint32 `yaml:"seed" json:"seed"`
	Samples        int    `yaml:"samples" json:"samples"`
	TagMap         string `yaml:"tagMap" json:"tagMap"`
	sampler.Bounds `yaml:",inline"`
}

// CSSArgs drive the rule generator. TagMap here weights selector subjects
// and is unrelated to the DOM tag map.
type CSSArgs struct {
	MinRuleCount      int64           `yaml:"minRuleCount" json:"minRuleCount"`
	MaxRuleCount      int64           `yaml:"maxRuleCount" json:"maxRuleCount"`
	TagMap            *random.Weights `yaml:"tagMap" json:"tagMap"`
	SimpleSelectorMap *random.Weights `yaml:"simpleSelectorMap" json:"simpleSelectorMap"`
	CombinatorMap     *random.Weights `yaml:"combinatorMap" json:"combinatorMap"`
	PropertyString    string          `yaml:"propertyString" json:"propertyString"`
	Classes           []string        `yaml:"classes,omitempty" json:"classes,omitempty"`
}

// DecodeExperiment reads a YAML or JSON experiment, applies defaults and
// validates it.
func DecodeExperiment(r io.Reader) (*Experiment, error) {
	var e Experiment
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&e); err != nil {
		return nil, fmt.Errorf("DecodeExperiment: %v: %w", err, ErrInvalidExperiment)
	}
	if e.DOM.TagMap == "" {
		e.DOM.TagMap = tagmap.Alexa
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	return &e, nil
}

// LoadExperiment reads the experiment at path.
func LoadExperiment(path string) (*Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadExperiment: %w", err)
	}
	defer f.Close()

	e, err := DecodeExperiment(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return e, nil
}

// Validate checks ranges and tables. Feasibility of the bounds is left to
// the sampler.
func (e *Experiment) Validate() error {
	if e.DOM.Samples < 0 {
		return fmt.Errorf("Experiment: samples=%d: %w", e.DOM.Samples, ErrInvalidExperiment)
	}
	if err := e.DOM.Bounds.Validate(); err != nil {
		return fmt.Errorf("Experiment: domArgs: %v: %w", err, ErrInvalidExperiment)
	}
	if e.CSS == nil {
		return nil
	}

	c := e.CSS
	if c.MinRuleCount < 0 || c.MaxRuleCount < c.MinRuleCount {
		return fmt.Errorf("Experiment: rule count [%d, %d]: %w", c.MinRuleCount, c.MaxRuleCount, ErrInvalidExperiment)
	}
	for name, w := range map[string]*random.Weights{
		"tagMap": c.TagMap, "simpleSelectorMap": c.SimpleSelectorMap, "combinatorMap": c.CombinatorMap,
	} {
		if w.Len() == 0 {
			return fmt.Errorf("Experiment: cssArgs.%s is empty: %w", name, ErrInvalidExperiment)
		}
		if err := w.Validate(); err != nil {
			return fmt.Errorf("Experiment: cssArgs.%s: %v: %w", name, err, ErrInvalidExperiment)
		}
	}

	return nil
}
