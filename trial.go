package mixprobe

import (
	"context"
	"fmt"

	intbits "github.com/tamirms/mixprobe/internal/bits"
)

// contextCheckInterval is how often to check for context cancellation while
// drawing keys.
const contextCheckInterval = 10000

// TrialResult is the outcome of one trial.
type TrialResult struct {
	Trial           int `json:"trial"`
	Keys            int `json:"keys"`
	Collisions      int `json:"collisions"`
	OccupiedBuckets int `json:"occupied_buckets"`
	Redraws         int `json:"redraws"`
}

// trial holds the state of a single trial. It is built fresh for every trial
// and dropped when the trial ends.
type trial struct {
	tableSize uint64
	reduce    func(uint64) uint64
	occupied  *intbits.Set
	seen      map[int64]struct{}

	keys       int
	collisions int
	redraws    int
}

func newTrial(tableSize uint64, reduce func(uint64) uint64) *trial {
	return &trial{
		tableSize: tableSize,
		reduce:    reduce,
		occupied:  intbits.NewSet(tableSize),
		seen:      make(map[int64]struct{}, tableSize),
	}
}

// offer processes one candidate key. Keys already used in this trial are
// counted as redraws and otherwise ignored.
func (t *trial) offer(key int64) {
	if _, dup := t.seen[key]; dup {
		t.redraws++
		return
	}
	t.seen[key] = struct{}{}
	t.keys++
	if t.occupied.Add(t.reduce(MixKey(key))) {
		t.collisions++
	}
}

func (t *trial) done() bool {
	return uint64(t.keys) >= t.tableSize
}

// run draws from src until tableSize unique keys have been processed.
func (t *trial) run(ctx context.Context, src KeySource) error {
	for draws := 0; !t.done(); draws++ {
		if draws%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		key, err := src.Next()
		if err != nil {
			return fmt.Errorf("after %d of %d keys: %w", t.keys, t.tableSize, err)
		}
		t.offer(key)
	}
	return nil
}

func (t *trial) result(index int) TrialResult {
	return TrialResult{
		Trial:           index,
		Keys:            t.keys,
		Collisions:      t.collisions,
		OccupiedBuckets: t.occupied.Count(),
		Redraws:         t.redraws,
	}
}
