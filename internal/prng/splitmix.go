// Package prng provides the seeded generator used to build permutation
// tables.
//
// The algorithm is fixed here rather than borrowed from math/rand so that a
// given seed produces the same table on every Go release and platform.
// Generated art depends on that: changing the sequence changes every image.
package prng

import "math/bits"

// SplitMix64 constants (Steele, Lea, Flood 2014).
const (
	golden = 0x9e3779b97f4a7c15
	mix1   = 0xbf58476d1ce4e5b9
	mix2   = 0x94d049bb133111eb
)

// SplitMix64 is a small deterministic 64-bit generator.
//
// Thread safety: SplitMix64 is NOT safe for concurrent use.
type SplitMix64 struct {
	state uint64
}

// New returns a generator seeded with seed.
func New(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Uint64 returns the next value in the sequence.
func (r *SplitMix64) Uint64() uint64 {
	r.state += golden
	z := r.state
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2
	return z ^ (z >> 31)
}

// Uint64N returns a uniformly distributed value in [0, n).
// It panics if n == 0.
func (r *SplitMix64) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("prng: invalid argument to Uint64N")
	}
	// Lemire's multiply-shift with rejection of the biased low range.
	hi, lo := bits.Mul64(r.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), n)
		}
	}
	return hi
}

// Shuffle permutes n elements with a descending Fisher-Yates pass.
// swap exchanges the elements at indexes i and j.
func (r *SplitMix64) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(r.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}
