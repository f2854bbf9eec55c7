// SPDX-License-Identifier: MIT
// Package: domfuzz/css
//
// errors.go — sentinel errors for rule generation.

package css

import "errors"

var (
	// ErrUnknownSelectorKind indicates a simple-selector key other than
	// "id", "class" or "end".
	ErrUnknownSelectorKind = errors.New("css: unknown selector kind")

	// ErrUnknownCombinator indicates a combinator key other than
	// "descendant", "child", "adjacentSibling", "generalSibling" or "end".
	ErrUnknownCombinator = errors.New("css: unknown combinator")

	// ErrMissingEnd indicates a selector or combinator table without "end";
	// generation over it could never terminate.
	ErrMissingEnd = errors.New("css: weight table has no \"end\" entry")

	// ErrInvalidSubject indicates an empty subject key, or one containing a
	// brace, whitespace or a combinator token.
	ErrInvalidSubject = errors.New("css: invalid selector subject")

	// ErrInvalidPropertyBody indicates a property body containing a brace.
	ErrInvalidPropertyBody = errors.New("css: property body must not contain braces")

	// ErrInvalidRuleCount indicates a negative rule count.
	ErrInvalidRuleCount = errors.New("css: rule count must be ≥ 0")
)
