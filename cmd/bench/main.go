// Bench measures Mix throughput against general-purpose hashes on the same
// keys, and the wall time and memory of collision trials.
//
// Usage:
//
//	go run ./cmd/bench -keys 10000000 -table-size 1000 -trials 20
//
// Flags:
//
//	-keys        Number of keys hashed per function (default: 10,000,000)
//	-table-size  Bucket count for the trial phase (default: 1000)
//	-trials      Number of trials in the trial phase (default: 20)
//	-seed        Random seed (default: 1)
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sys/unix"

	"github.com/tamirms/mixprobe"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

type hashCase struct {
	name string
	fn   func(key int64, buf []byte) uint64
}

var hashCases = []hashCase{
	{"splitmix64", func(key int64, _ []byte) uint64 { return mixprobe.MixKey(key) }},
	{"xxhash", func(_ int64, buf []byte) uint64 { return xxhash.Sum64(buf) }},
	{"xxh3", func(_ int64, buf []byte) uint64 { return xxh3.Hash(buf) }},
	{"murmur3", func(_ int64, buf []byte) uint64 { return murmur3.Sum64(buf) }},
}

var sink uint64

func main() {
	keysFlag := flag.Int("keys", 10_000_000, "number of keys hashed per function")
	tableSizeFlag := flag.Uint64("table-size", mixprobe.DefaultTableSize, "bucket count for the trial phase")
	trialsFlag := flag.Int("trials", mixprobe.DefaultTrials, "number of trials")
	seedFlag := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	numKeys := *keysFlag
	if numKeys <= 0 {
		fmt.Printf("-keys must be positive\n")
		return
	}

	fmt.Println("Generating keys...")
	rng := rand.New(rand.NewPCG(*seedFlag, ^*seedFlag))
	keys := make([]int64, numKeys)
	bufs := make([][8]byte, numKeys)
	for i := range keys {
		keys[i] = int64(int32(rng.Uint32()))
		binary.LittleEndian.PutUint64(bufs[i][:], uint64(keys[i]))
	}

	fmt.Println("Hashing keys...")
	durations := make([]time.Duration, len(hashCases))
	for i, hc := range hashCases {
		start := time.Now()
		var acc uint64
		for j := range keys {
			acc ^= hc.fn(keys[j], bufs[j][:])
		}
		durations[i] = time.Since(start)
		sink ^= acc
	}

	fmt.Println("Running trials...")
	baselineRSS := getMaxRSS()
	eng, err := mixprobe.NewEngine(
		mixprobe.WithTableSize(*tableSizeFlag),
		mixprobe.WithTrials(*trialsFlag),
		mixprobe.WithSeed(*seedFlag),
	)
	if err != nil {
		fmt.Printf("NewEngine failed: %v\n", err)
		return
	}
	trialStart := time.Now()
	sum, err := eng.Run(context.Background())
	if err != nil {
		fmt.Printf("Run failed: %v\n", err)
		return
	}
	trialDuration := time.Since(trialStart)
	peakRSS := getMaxRSS()

	fmt.Printf("\n")
	fmt.Printf("╔═════════════════════╦════════════════╗\n")
	fmt.Printf("║ Hash                ║ Throughput     ║\n")
	fmt.Printf("╠═════════════════════╬════════════════╣\n")
	for i, hc := range hashCases {
		fmt.Printf("║ %-20s║ %7.1f M/sec  ║\n", hc.name, float64(numKeys)/durations[i].Seconds()/1_000_000)
	}
	fmt.Printf("╠═════════════════════╬════════════════╣\n")
	fmt.Printf("║ Table size          ║ %-15d║\n", sum.TableSize)
	fmt.Printf("║ Trials              ║ %-15d║\n", sum.Trials)
	fmt.Printf("║ Average collisions  ║ %-15.2f║\n", sum.Average)
	fmt.Printf("║ Ideal expectation   ║ %-15.2f║\n", sum.Expected)
	fmt.Printf("║ Trial time          ║ %6.3f sec     ║\n", trialDuration.Seconds())
	fmt.Printf("║ Peak RSS            ║ %6.1f MB      ║\n", float64(peakRSS)/1_000_000)
	fmt.Printf("║ RSS growth (trials) ║ %6.1f MB      ║\n", float64(peakRSS-baselineRSS)/1_000_000)
	fmt.Printf("╚═════════════════════╩════════════════╝\n")
}
