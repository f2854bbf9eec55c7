// SPDX-License-Identifier: MIT
// Package: domfuzz/random
//
// errors.go — sentinel errors for the random package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context with "%s: ...: %w" (see errorf below).

package random

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates that a choice was requested over an empty slice or
// an empty weight map. No draw is consumed in that case.
// Usage: if errors.Is(err, ErrEmptyInput) { /* skip or fail */ }.
var ErrEmptyInput = errors.New("random: empty input")

// ErrInvalidWeight indicates a weight that is not strictly positive (or is
// NaN/Inf) inside a Weights map.
var ErrInvalidWeight = errors.New("random: weight must be > 0")

// errorf prefixes a wrapped sentinel with the method name, e.g.
// "WeightedChoice: 0 candidates: random: empty input".
func errorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
