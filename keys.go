package mixprobe

import (
	"math/rand/v2"

	proberrors "github.com/tamirms/mixprobe/errors"
)

// KeySource produces candidate keys for trials. The engine discards
// candidates already used in the current trial and asks again.
type KeySource interface {
	Next() (int64, error)
}

// UniformSource draws keys uniformly from a closed int64 range.
type UniformSource struct {
	rng  *rand.Rand
	lo   int64
	span uint64 // hi-lo+1; 0 means the whole int64 range
}

// NewUniformSource returns a source over [lo, hi] backed by a PCG generator
// seeded with seed. Precondition: lo <= hi.
func NewUniformSource(lo, hi int64, seed uint64) *UniformSource {
	return &UniformSource{
		rng:  rand.New(rand.NewPCG(seed, seed^mixIncrement)),
		lo:   lo,
		span: uint64(hi-lo) + 1,
	}
}

// Next returns the next key. It never fails.
func (s *UniformSource) Next() (int64, error) {
	if s.span == 0 {
		return int64(s.rng.Uint64()), nil
	}
	return s.lo + int64(s.rng.Uint64N(s.span)), nil
}

// SequenceSource replays a fixed list of keys, then reports
// ErrKeySourceExhausted.
type SequenceSource struct {
	keys []int64
	pos  int
}

// NewSequenceSource returns a source that yields keys in order.
// The slice is copied, so the caller can reuse it after this call.
func NewSequenceSource(keys ...int64) *SequenceSource {
	return &SequenceSource{keys: append([]int64(nil), keys...)}
}

// Next returns the next key in the sequence.
func (s *SequenceSource) Next() (int64, error) {
	if s.pos >= len(s.keys) {
		return 0, proberrors.ErrKeySourceExhausted
	}
	k := s.keys[s.pos]
	s.pos++
	return k, nil
}

// Remaining returns the number of keys not yet consumed.
func (s *SequenceSource) Remaining() int {
	return len(s.keys) - s.pos
}
