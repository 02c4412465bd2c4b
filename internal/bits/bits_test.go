package bits

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// TestFastRange32Range verifies that the result is always in [0, n).
func TestFastRange32Range(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		n := uint32(rng.Uint32N(math.MaxUint32)) + 1 // n in [1, MaxUint32]
		h := rng.Uint64()

		got := FastRange32(h, n)
		if got >= n {
			t.Fatalf("iter %d: FastRange32(0x%X, %d)=%d >= %d", i, h, n, got, n)
		}
	}
}

// TestFastRange32EdgeCases: n=0->0, n=1->0, h=0->0, h=MaxUint64->n-1.
func TestFastRange32EdgeCases(t *testing.T) {
	for _, h := range []uint64{0, 1, math.MaxUint64, 0xDEADBEEF} {
		if got := FastRange32(h, 0); got != 0 {
			t.Errorf("FastRange32(0x%X, 0) = %d, want 0", h, got)
		}
		if got := FastRange32(h, 1); got != 0 {
			t.Errorf("FastRange32(0x%X, 1) = %d, want 0", h, got)
		}
	}

	for n := uint32(2); n <= 100; n++ {
		if got := FastRange32(0, n); got != 0 {
			t.Errorf("FastRange32(0, %d) = %d, want 0", n, got)
		}
		if got := FastRange32(math.MaxUint64, n); got != n-1 {
			t.Errorf("FastRange32(MaxUint64, %d) = %d, want %d", n, got, n-1)
		}
	}
}

func TestSetAddReportsPresence(t *testing.T) {
	s := NewSet(130)
	if s.Len() != 130 {
		t.Fatalf("Len() = %d, want 130", s.Len())
	}

	for _, i := range []uint64{0, 63, 64, 129} {
		if s.Has(i) {
			t.Errorf("Has(%d) on empty set = true", i)
		}
		if s.Add(i) {
			t.Errorf("first Add(%d) reported present", i)
		}
		if !s.Add(i) {
			t.Errorf("second Add(%d) reported absent", i)
		}
		if !s.Has(i) {
			t.Errorf("Has(%d) after Add = false", i)
		}
	}
	if s.Count() != 4 {
		t.Errorf("Count() = %d, want 4", s.Count())
	}
	if s.Has(1) || s.Has(65) || s.Has(128) {
		t.Error("neighbouring bits were set")
	}
}

// TestSetMatchesMap cross-checks Set against a map over random inserts.
func TestSetMatchesMap(t *testing.T) {
	rng := newTestRNG(t)
	const n = 1000

	s := NewSet(n)
	ref := make(map[uint64]struct{})
	for i := 0; i < 5000; i++ {
		v := rng.Uint64N(n)
		_, want := ref[v]
		if got := s.Add(v); got != want {
			t.Fatalf("iter %d: Add(%d) = %v, want %v", i, v, got, want)
		}
		ref[v] = struct{}{}
	}
	if s.Count() != len(ref) {
		t.Errorf("Count() = %d, want %d", s.Count(), len(ref))
	}
}

func TestSetSingleBucket(t *testing.T) {
	s := NewSet(1)
	if s.Add(0) {
		t.Error("first Add(0) reported present")
	}
	for i := 0; i < 10; i++ {
		if !s.Add(0) {
			t.Fatal("repeat Add(0) reported absent")
		}
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}
