// Package bits provides low-level bit manipulation primitives: range
// reduction of 64-bit hashes and a fixed-size bitset.
package bits

import "math/bits"

// FastRange32 maps a 64-bit hash to [0, n) returning uint32.
// Uses the "fastrange" technique: multiply and take high bits.
func FastRange32(hash uint64, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, uint64(n))
	return uint32(hi)
}

// Set is a fixed-capacity bitset over [0, Len()).
type Set struct {
	words []uint64
	n     uint64
	count int
}

// NewSet returns an empty set able to hold members in [0, n).
func NewSet(n uint64) *Set {
	return &Set{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

// Len returns the capacity of the set.
func (s *Set) Len() uint64 { return s.n }

// Count returns the number of distinct members.
func (s *Set) Count() int { return s.count }

// Has reports whether i is a member. Precondition: i < Len().
func (s *Set) Has(i uint64) bool {
	return s.words[i>>6]&(1<<(i&63)) != 0
}

// Add inserts i and reports whether it was already present.
// Precondition: i < Len().
func (s *Set) Add(i uint64) (present bool) {
	w := &s.words[i>>6]
	mask := uint64(1) << (i & 63)
	if *w&mask != 0 {
		return true
	}
	*w |= mask
	s.count++
	return false
}
