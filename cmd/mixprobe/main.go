// Mixprobe measures bucket collisions of the SplitMix64 finalizer over
// repeated trials of unique random keys.
//
// Usage:
//
//	go run ./cmd/mixprobe
//	go run ./cmd/mixprobe -table-size 4096 -trials 50 -seed 1
//	go run ./cmd/mixprobe -config probe.yaml -format json
//
// Flags:
//
//	-config      YAML configuration file (flags given explicitly override it)
//	-table-size  Bucket count, also the number of keys per trial (default: 1000)
//	-trials      Number of trials (default: 20)
//	-key-min     Smallest key (default: -2147483648)
//	-key-max     Largest key (default: 2147483647)
//	-seed        Random seed; omit for a nondeterministic run
//	-reduction   Bucket reduction: modulo or fastrange (default: modulo)
//	-format      Report format: text or json (default: text)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/tamirms/mixprobe"
	"github.com/tamirms/mixprobe/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mixprobe: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mixprobe", flag.ContinueOnError)
	configFlag := fs.String("config", "", "YAML configuration file")
	tableSizeFlag := fs.Int64("table-size", mixprobe.DefaultTableSize, "bucket count and keys per trial")
	trialsFlag := fs.Int("trials", mixprobe.DefaultTrials, "number of trials")
	keyMinFlag := fs.Int64("key-min", mixprobe.DefaultKeyMin, "smallest key")
	keyMaxFlag := fs.Int64("key-max", mixprobe.DefaultKeyMax, "largest key")
	seedFlag := fs.Uint64("seed", 0, "random seed (omit for a nondeterministic run)")
	reductionFlag := fs.String("reduction", "modulo", "bucket reduction: modulo or fastrange")
	formatFlag := fs.String("format", "text", "report format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := &config.Config{}
	if *configFlag != "" {
		var err error
		if cfg, err = config.LoadConfig(*configFlag); err != nil {
			return err
		}
	}

	// Explicit flags override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "table-size":
			cfg.TableSize = tableSizeFlag
		case "trials":
			cfg.TrialCount = trialsFlag
		case "key-min", "key-max":
			if cfg.KeyRange == nil {
				cfg.KeyRange = &config.KeyRange{Min: mixprobe.DefaultKeyMin, Max: mixprobe.DefaultKeyMax}
			}
			if f.Name == "key-min" {
				cfg.KeyRange.Min = *keyMinFlag
			} else {
				cfg.KeyRange.Max = *keyMaxFlag
			}
		case "seed":
			cfg.RandomSeed = seedFlag
		case "reduction":
			cfg.Reduction = *reductionFlag
		case "format":
			cfg.Format = *formatFlag
		}
	})

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	reporter, err := mixprobe.NewReporter(cfg.Format, stdout)
	if err != nil {
		return err
	}
	opts = append(opts, mixprobe.WithReporter(reporter))

	eng, err := mixprobe.NewEngine(opts...)
	if err != nil {
		return err
	}
	if _, err := eng.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("interrupted: %w", err)
		}
		return err
	}
	return nil
}
