package mixprobe

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns a generator seeded from the test name, so each test
// sees a stable but distinct stream.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// recordingReporter keeps everything it is sent.
type recordingReporter struct {
	trials    []TrialResult
	summaries []Summary
	failOn    int // fail the Nth ReportTrial call (1-based); 0 never fails
	err       error
}

func (r *recordingReporter) ReportTrial(res TrialResult) error {
	r.trials = append(r.trials, res)
	if r.failOn > 0 && len(r.trials) == r.failOn {
		return r.err
	}
	return nil
}

func (r *recordingReporter) ReportSummary(s Summary) error {
	r.summaries = append(r.summaries, s)
	return nil
}

// countingSource wraps a KeySource and records every key it hands out.
type countingSource struct {
	src  KeySource
	keys []int64
}

func (c *countingSource) Next() (int64, error) {
	k, err := c.src.Next()
	if err == nil {
		c.keys = append(c.keys, k)
	}
	return k, err
}

// newTestEngine builds an engine or fails the test.
func newTestEngine(t testing.TB, opts ...Option) *Engine {
	t.Helper()
	eng, err := NewEngine(opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return eng
}
