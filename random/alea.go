// SPDX-License-Identifier: MIT
// Package: domfuzz/random
//
// alea.go — Alea PRNG (Johannes Baagøe), seeded through the Mash hash.
//
// Compatibility contract:
//   • The seed is hashed as its decimal string form, exactly like
//     seedrandom.alea(seed) does for numeric seeds.
//   • Float64 consumes two raw draws (32 high bits + 21 low bits).
//   • Int32 consumes one raw draw.
// Any change to the arithmetic below breaks replay of historical corpora.

package random

import (
	"math"
	"strconv"
	"unicode/utf16"
)

const (
	aleaMultiplier = 2091639
	twoPow32       = 4294967296.0           // 2^32
	twoPowNeg32    = 2.3283064365386963e-10 // 2^-32
	twoPowNeg53    = 1.1102230246251565e-16 // 2^-53
	lowBitsScale   = 0x200000               // 2^21
	mashInit       = 0xefc8249d
	mashFactor     = 0.02519603282416938
)

// Alea is a Source producing the Alea stream for a given seed.
type Alea struct {
	s0, s1, s2 float64
	c          float64
}

// NewAlea seeds an Alea stream from the decimal form of seed.
// Complexity: O(digits(seed)).
func NewAlea(seed uint32) *Alea {
	return newAleaFromString(strconv.FormatUint(uint64(seed), 10))
}

func newAleaFromString(seed string) *Alea {
	m := newMash()
	a := &Alea{c: 1}
	a.s0 = m.sum(" ")
	a.s1 = m.sum(" ")
	a.s2 = m.sum(" ")

	a.s0 -= m.sum(seed)
	if a.s0 < 0 {
		a.s0++
	}
	a.s1 -= m.sum(seed)
	if a.s1 < 0 {
		a.s1++
	}
	a.s2 -= m.sum(seed)
	if a.s2 < 0 {
		a.s2++
	}

	return a
}

// next advances the generator and returns a float in [0,1) with 32 bits of
// resolution.
func (a *Alea) next() float64 {
	// float64(...) conversions forbid FMA fusion, which would change the stream.
	t := float64(aleaMultiplier*a.s0) + float64(a.c*twoPowNeg32)
	a.s0 = a.s1
	a.s1 = a.s2
	a.c = math.Trunc(t)
	a.s2 = t - a.c

	return a.s2
}

// Float64 returns a float in [0,1) with 53 bits of resolution.
func (a *Alea) Float64() float64 {
	hi := a.next()
	lo := math.Trunc(a.next() * lowBitsScale)

	return hi + float64(lo*twoPowNeg53)
}

// Int32 returns a signed 32-bit draw.
func (a *Alea) Int32() int32 {
	return int32(uint32(a.next() * twoPow32))
}

// mash is the string hash used to derive the Alea state.
type mash struct {
	n float64
}

func newMash() *mash {
	return &mash{n: mashInit}
}

// sum folds data into the running hash and returns a float in [0,1).
// Characters are consumed as UTF-16 code units.
func (m *mash) sum(data string) float64 {
	var h float64
	for _, unit := range utf16.Encode([]rune(data)) {
		m.n += float64(unit)
		h = mashFactor * m.n
		m.n = float64(toUint32(h))
		h -= m.n
		h *= m.n
		m.n = float64(toUint32(h))
		h -= m.n
		m.n += float64(h * twoPow32)
	}

	return float64(toUint32(m.n)) * twoPowNeg32
}

// toUint32 truncates a non-negative float and reduces it modulo 2^32.
func toUint32(f float64) uint32 {
	return uint32(uint64(math.Trunc(f)))
}
