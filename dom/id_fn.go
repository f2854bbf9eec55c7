package dom

import (
	"fmt"
	"strconv"
)

// IDFn turns a zero-based counter value into an element id.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// AlphanumericIDFn returns idx in base 36, e.g. 0→"0", 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// HexIDFn returns idx in lowercase hex, e.g. 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixedIDFn prepends prefix to every id produced by fn. A letter prefix
// keeps digit-leading ids usable in CSS id selectors.
// Panics if fn is nil.
func PrefixedIDFn(prefix string, fn IDFn) IDFn {
	if fn == nil {
		panic("PrefixedIDFn: fn is nil")
	}

	return func(idx int) string {
		return prefix + fn(idx)
	}
}

// DefaultIDFn is the id scheme used unless WithIDScheme overrides it:
// "i0", "i1", … "i9", "ia", … "iz", "i10", …
var DefaultIDFn = PrefixedIDFn("i", AlphanumericIDFn)

// nextID issues the id for counter and returns the advanced counter.
func nextID(fn IDFn, counter int) (string, int) {
	return fn(counter), counter + 1
}
