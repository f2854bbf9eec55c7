// SPDX-License-Identifier: MIT
// Package: domfuzz/css
//
// generate.go — rule generation over weighted selector tables.

package css

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/domfuzz/random"
)

// Spec is the input of one GenerateRules call. Classes and IDs are read-only.
type Spec struct {
	Subjects        *random.Weights
	SimpleSelectors *random.Weights
	Combinators     *random.Weights
	Classes         []string
	IDs             []string
	PropertyBody    string
	RuleCount       int
}

// Validate checks every table up front so generation cannot fail midway.
func (s Spec) Validate() error {
	if s.Subjects.Len() == 0 {
		return fmt.Errorf("Spec: subjects: %w", random.ErrEmptyInput)
	}
	if err := s.Subjects.Validate(); err != nil {
		return fmt.Errorf("Spec: subjects: %w", err)
	}
	for subject := range s.Subjects.All() {
		if !validSubject(subject) {
			return fmt.Errorf("Spec: subject %q: %w", subject, ErrInvalidSubject)
		}
	}
	if err := s.SimpleSelectors.Validate(); err != nil {
		return fmt.Errorf("Spec: simple selectors: %w", err)
	}
	if err := s.Combinators.Validate(); err != nil {
		return fmt.Errorf("Spec: combinators: %w", err)
	}

	for kind := range s.SimpleSelectors.All() {
		switch kind {
		case KindEnd, KindID, KindClass:
		default:
			return fmt.Errorf("Spec: %q: %w", kind, ErrUnknownSelectorKind)
		}
	}
	for kind := range s.Combinators.All() {
		if _, ok := combinatorTokens[kind]; !ok && kind != KindEnd {
			return fmt.Errorf("Spec: %q: %w", kind, ErrUnknownCombinator)
		}
	}
	if _, ok := s.SimpleSelectors.Get(KindEnd); !ok {
		return fmt.Errorf("Spec: simple selectors: %w", ErrMissingEnd)
	}
	if _, ok := s.Combinators.Get(KindEnd); !ok {
		return fmt.Errorf("Spec: combinators: %w", ErrMissingEnd)
	}

	if strings.ContainsAny(s.PropertyBody, "{}") {
		return fmt.Errorf("Spec: %q: %w", s.PropertyBody, ErrInvalidPropertyBody)
	}
	if s.RuleCount < 0 {
		return fmt.Errorf("Spec: %d: %w", s.RuleCount, ErrInvalidRuleCount)
	}

	return nil
}

// validSubject reports whether subject can stand alone as the type part of
// a compound selector.
func validSubject(subject string) bool {
	return subject != "" &&
		!strings.ContainsAny(subject, "{}>+~") &&
		strings.IndexFunc(subject, unicode.IsSpace) < 0
}

// Result holds the generated rules and the per-kind usage counters.
type Result struct {
	Rules         []string
	SelectorsUsed *Usage
}

// Render joins the rules with newlines.
func (r *Result) Render() string {
	return strings.Join(r.Rules, "\n")
}

// GenerateRules draws spec.RuleCount rules from r.
// spec is validated before the first draw; on error nothing is drawn.
func GenerateRules(r random.Sampler, spec Spec) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("GenerateRules: %w", err)
	}

	g := &generator{
		r:    r,
		spec: spec,
		used: newUsage([]string{KindTag, KindUniversal}, spec.SimpleSelectors.Keys(), spec.Combinators.Keys()),
	}

	rules := make([]string, 0, spec.RuleCount)
	for i := 0; i < spec.RuleCount; i++ {
		sel, err := g.selector()
		if err != nil {
			return nil, fmt.Errorf("GenerateRules: rule %d: %w", i, err)
		}
		rules = append(rules, sel+" { "+spec.PropertyBody+" }")
	}

	return &Result{Rules: rules, SelectorsUsed: g.used}, nil
}

type generator struct {
	r    random.Sampler
	spec Spec
	used *Usage
}

func (g *generator) selector() (string, error) {
	var sb strings.Builder
	if err := g.compound(&sb); err != nil {
		return "", err
	}

	for {
		kind, err := g.r.WeightedChoice(g.spec.Combinators)
		if err != nil {
			return "", err
		}
		if kind == KindEnd {
			return sb.String(), nil
		}
		sb.WriteString(combinatorTokens[kind])
		g.used.inc(kind)
		if err = g.compound(&sb); err != nil {
			return "", err
		}
	}
}

// compound writes a subject followed by zero or more id/class qualifiers.
func (g *generator) compound(sb *strings.Builder) error {
	subject, err := g.r.WeightedChoice(g.spec.Subjects)
	if err != nil {
		return err
	}
	if subject == Universal {
		g.used.inc(KindUniversal)
	} else {
		g.used.inc(KindTag)
	}
	sb.WriteString(subject)

	for {
		kind, err := g.r.WeightedChoice(g.spec.SimpleSelectors)
		if err != nil {
			return err
		}

		var prefix string
		var pool []string
		switch kind {
		case KindEnd:
			return nil
		case KindID:
			prefix, pool = "#", g.spec.IDs
		case KindClass:
			prefix, pool = ".", g.spec.Classes
		}
		if len(pool) == 0 {
			continue
		}

		name, err := random.Choice(g.r, pool)
		if err != nil {
			return err
		}
		sb.WriteString(prefix)
		sb.WriteString(name)
		g.used.inc(kind)
	}
}
