package mixprobe

import (
	"context"
	"fmt"
	"math/rand/v2"

	intbits "github.com/tamirms/mixprobe/internal/bits"
)

// Summary aggregates the results of a run.
type Summary struct {
	TableSize       uint64        `json:"table_size"`
	Trials          int           `json:"trials"`
	TotalCollisions int           `json:"total_collisions"`
	Average         float64       `json:"average"`
	Expected        float64       `json:"expected"`
	Results         []TrialResult `json:"-"`
}

// Engine runs collision trials. It is not safe for concurrent use.
type Engine struct {
	cfg       *engineConfig
	keys      KeySource
	reduce    func(uint64) uint64
	completed int // trials run so far, used to number results
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	keys := cfg.keys
	if keys == nil {
		seed := cfg.seed
		if !cfg.seeded {
			seed = rand.Uint64()
		}
		keys = NewUniformSource(cfg.keyMin, cfg.keyMax, seed)
	}

	return &Engine{
		cfg:    cfg,
		keys:   keys,
		reduce: reducer(cfg.reduction, cfg.tableSize),
	}, nil
}

func reducer(r Reduction, n uint64) func(uint64) uint64 {
	if r == ReduceFastRange {
		n32 := uint32(n)
		return func(h uint64) uint64 { return uint64(intbits.FastRange32(h, n32)) }
	}
	return func(h uint64) uint64 { return h % n }
}

// TableSize returns the configured bucket count.
func (e *Engine) TableSize() uint64 { return e.cfg.tableSize }

// RunTrial runs a single trial of TableSize unique keys and returns its result.
// The result is not sent to the reporter.
func (e *Engine) RunTrial(ctx context.Context) (TrialResult, error) {
	t := newTrial(e.cfg.tableSize, e.reduce)
	if err := t.run(ctx, e.keys); err != nil {
		return TrialResult{}, fmt.Errorf("trial %d: %w", e.completed+1, err)
	}
	e.completed++
	return t.result(e.completed), nil
}

// Run executes the configured number of trials in sequence, reporting each
// as it completes, and returns the aggregate. The summary is reported once
// after the last trial.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	sum := Summary{
		TableSize: e.cfg.tableSize,
		Trials:    e.cfg.trials,
		Expected:  ExpectedCollisions(e.cfg.tableSize, e.cfg.tableSize),
		Results:   make([]TrialResult, 0, e.cfg.trials),
	}

	for range e.cfg.trials {
		res, err := e.RunTrial(ctx)
		if err != nil {
			return Summary{}, err
		}
		sum.Results = append(sum.Results, res)
		sum.TotalCollisions += res.Collisions
		if e.cfg.reporter != nil {
			if err := e.cfg.reporter.ReportTrial(res); err != nil {
				return Summary{}, fmt.Errorf("report trial %d: %w", res.Trial, err)
			}
		}
	}

	sum.Average = float64(sum.TotalCollisions) / float64(sum.Trials)
	if e.cfg.reporter != nil {
		if err := e.cfg.reporter.ReportSummary(sum); err != nil {
			return Summary{}, fmt.Errorf("report summary: %w", err)
		}
	}
	return sum, nil
}
