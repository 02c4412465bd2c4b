package mixprobe

import "math"

// ExpectedCollisions returns the expected collision count when keys distinct
// keys are hashed into buckets buckets by an ideal uniform hash:
//
//	keys - buckets*(1 - (1-1/buckets)^keys)
//
// i.e. keys minus the expected number of occupied buckets.
func ExpectedCollisions(keys, buckets uint64) float64 {
	if keys == 0 || buckets == 0 {
		return 0
	}
	n := float64(keys)
	m := float64(buckets)
	// log1p keeps (1-1/m)^n accurate for large m.
	empty := math.Exp(n * math.Log1p(-1/m))
	return n - m*(1-empty)
}
