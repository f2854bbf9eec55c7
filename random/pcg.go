// SPDX-License-Identifier: MIT
// Package: domfuzz/random
//
// pcg.go — math/rand/v2 PCG adapter.

package random

import (
	"math/rand/v2"
)

// PCG is a Source backed by math/rand/v2's PCG generator.
type PCG struct {
	r *rand.Rand
}

// NewPCG seeds a PCG stream; the two PCG words are derived from seed with a
// SplitMix64 mix so nearby seeds do not produce correlated streams.
func NewPCG(seed uint32) *PCG {
	hi := splitMix64(uint64(seed), 1)
	lo := splitMix64(uint64(seed), 2)

	return &PCG{r: rand.New(rand.NewPCG(hi, lo))}
}

// Float64 returns a float in [0,1).
func (p *PCG) Float64() float64 {
	return p.r.Float64()
}

// Int32 returns a signed 32-bit draw covering the full int32 range.
func (p *PCG) Int32() int32 {
	return int32(p.r.Uint32())
}

// splitMix64 mixes a parent value and a stream identifier into a new 64-bit
// word (SplitMix64 finalizer).
// Complexity: O(1).
func splitMix64(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
