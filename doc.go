// Package mixprobe measures how often the SplitMix64 finalizer maps distinct
// keys to the same bucket of a fixed-size table.
//
// A run is a sequence of independent trials. Each trial draws N unique keys
// (N is the table size), reduces Mix(key) modulo N, and counts the keys whose
// bucket was already occupied. The run reports every trial's collision count
// and the mean over all trials, alongside the count an ideal uniform hash
// would be expected to produce.
//
// # Basic Usage
//
//	eng, err := mixprobe.NewEngine(
//	    mixprobe.WithTableSize(1000),
//	    mixprobe.WithTrials(20),
//	    mixprobe.WithReporter(mixprobe.NewTextReporter(os.Stdout)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sum, err := eng.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("mean %.2f, expected %.2f\n", sum.Average, sum.Expected)
//
// Pass WithSeed for reproducible key sequences, or WithKeySource to replay a
// fixed list of keys.
//
// # Package Structure
//
//   - Mixer: mix.go (Mix, MixKey, Bucket)
//   - Trials: engine.go (NewEngine, Run, RunTrial), trial.go (per-trial state)
//   - Configuration: options.go (Option, With* functions)
//   - Keys: keys.go (UniformSource, SequenceSource)
//   - Output: report.go (TextReporter, JSONReporter), theory.go (ExpectedCollisions)
//   - Bit primitives: internal/bits/ (bitset, FastRange32)
//   - Config files: internal/config/ (YAML)
package mixprobe
