package mixprobe

// SplitMix64 finalizer constants.
const (
	mixIncrement = 0x9E3779B97F4A7C15
	mixMul1      = 0xBF58476D1CE4E5B9
	mixMul2      = 0x94D049BB133111EB
)

// Mix is the SplitMix64 finalizer: an increment by the golden-ratio constant
// followed by two xor-shift-multiply rounds and a final xor-shift.
// All arithmetic wraps modulo 2^64 and all shifts are logical.
func Mix(x uint64) uint64 {
	x += mixIncrement
	x = (x ^ (x >> 30)) * mixMul1
	x = (x ^ (x >> 27)) * mixMul2
	return x ^ (x >> 31)
}

// MixKey widens a signed key to its 64-bit two's complement bit pattern and
// mixes it. Negative keys are sign extended, so MixKey(-1) == Mix(MaxUint64).
func MixKey(key int64) uint64 {
	return Mix(uint64(key))
}

// Bucket maps key to a bucket index in [0, n) by unsigned modulo reduction
// of MixKey(key). n must be non-zero.
func Bucket(key int64, n uint64) uint64 {
	return MixKey(key) % n
}
