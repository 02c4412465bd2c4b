package mixprobe

import (
	"fmt"
	"math"

	proberrors "github.com/tamirms/mixprobe/errors"
)

const (
	// DefaultTableSize is the bucket count and per-trial key budget.
	DefaultTableSize = 1000
	// DefaultTrials is the number of independent trials per run.
	DefaultTrials = 20
	// DefaultKeyMin and DefaultKeyMax bound the signed 32-bit key range.
	DefaultKeyMin = math.MinInt32
	DefaultKeyMax = math.MaxInt32

	maxTableSize = math.MaxUint32
)

// Reduction selects how a mixed hash is reduced to a bucket index.
type Reduction uint8

const (
	// ReduceModulo reduces with unsigned modulo: Mix(key) % N.
	ReduceModulo Reduction = iota
	// ReduceFastRange reduces with the multiply-high range mapping.
	ReduceFastRange
)

func (r Reduction) String() string {
	switch r {
	case ReduceModulo:
		return "modulo"
	case ReduceFastRange:
		return "fastrange"
	default:
		return fmt.Sprintf("Reduction(%d)", uint8(r))
	}
}

// ParseReduction parses the names produced by Reduction.String.
func ParseReduction(s string) (Reduction, error) {
	switch s {
	case "", "modulo":
		return ReduceModulo, nil
	case "fastrange":
		return ReduceFastRange, nil
	default:
		return 0, fmt.Errorf("%w: %q", proberrors.ErrUnknownReduction, s)
	}
}

// Option is a functional option for configuring an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	tableSize uint64
	trials    int
	keyMin    int64
	keyMax    int64
	seed      uint64
	seeded    bool
	reduction Reduction
	keys      KeySource
	reporter  Reporter
}

func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		tableSize: DefaultTableSize,
		trials:    DefaultTrials,
		keyMin:    DefaultKeyMin,
		keyMax:    DefaultKeyMax,
	}
}

// WithTableSize sets the bucket count N, which is also the number of unique
// keys processed per trial.
func WithTableSize(n uint64) Option {
	return func(c *engineConfig) {
		c.tableSize = n
	}
}

// WithTrials sets the number of trials Run executes.
func WithTrials(n int) Option {
	return func(c *engineConfig) {
		c.trials = n
	}
}

// WithKeyRange sets the closed range keys are drawn from.
// The range must hold at least N distinct keys.
func WithKeyRange(lo, hi int64) Option {
	return func(c *engineConfig) {
		c.keyMin = lo
		c.keyMax = hi
	}
}

// WithSeed makes key generation reproducible. Without it every Engine draws
// from a randomly seeded generator.
func WithSeed(seed uint64) Option {
	return func(c *engineConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithReduction sets the bucket reduction. Default is ReduceModulo.
func WithReduction(r Reduction) Option {
	return func(c *engineConfig) {
		c.reduction = r
	}
}

// WithKeySource replaces the random key generator. The key range and seed
// options are ignored when a source is supplied.
func WithKeySource(src KeySource) Option {
	return func(c *engineConfig) {
		c.keys = src
	}
}

// WithReporter sets where per-trial results and the summary are sent.
// Default is no reporting.
func WithReporter(r Reporter) Option {
	return func(c *engineConfig) {
		c.reporter = r
	}
}

func (c *engineConfig) validate() error {
	if c.tableSize == 0 {
		return proberrors.ErrInvalidTableSize
	}
	if c.tableSize > maxTableSize {
		return fmt.Errorf("%w: %d", proberrors.ErrTableSizeTooLarge, c.tableSize)
	}
	if c.trials <= 0 {
		return fmt.Errorf("%w: %d", proberrors.ErrInvalidTrialCount, c.trials)
	}
	if c.reduction > ReduceFastRange {
		return fmt.Errorf("%w: %s", proberrors.ErrUnknownReduction, c.reduction)
	}
	if c.keys != nil {
		return nil
	}
	if c.keyMin > c.keyMax {
		return fmt.Errorf("%w: [%d, %d]", proberrors.ErrInvalidKeyRange, c.keyMin, c.keyMax)
	}
	// span-1 avoids overflow when the range covers all of int64.
	if spanMinusOne := uint64(c.keyMax - c.keyMin); spanMinusOne < c.tableSize-1 {
		return fmt.Errorf("%w: %d keys in [%d, %d], table size %d",
			proberrors.ErrKeyRangeTooSmall, spanMinusOne+1, c.keyMin, c.keyMax, c.tableSize)
	}
	return nil
}
