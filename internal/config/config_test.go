package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tamirms/mixprobe"
	proberrors "github.com/tamirms/mixprobe/errors"
)

func TestParseFull(t *testing.T) {
	data := []byte(`
table_size: 64
trial_count: 3
key_range:
  min: -100
  max: 100
random_seed: 42
reduction: fastrange
format: json
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TableSize == nil || *cfg.TableSize != 64 {
		t.Errorf("TableSize = %v, want 64", cfg.TableSize)
	}
	if cfg.TrialCount == nil || *cfg.TrialCount != 3 {
		t.Errorf("TrialCount = %v, want 3", cfg.TrialCount)
	}
	if cfg.KeyRange == nil || cfg.KeyRange.Min != -100 || cfg.KeyRange.Max != 100 {
		t.Errorf("KeyRange = %+v, want [-100, 100]", cfg.KeyRange)
	}
	if cfg.RandomSeed == nil || *cfg.RandomSeed != 42 {
		t.Errorf("RandomSeed = %v, want 42", cfg.RandomSeed)
	}
	if cfg.Reduction != "fastrange" || cfg.Format != "json" {
		t.Errorf("Reduction/Format = %q/%q", cfg.Reduction, cfg.Format)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	eng, err := mixprobe.NewEngine(opts...)
	if err != nil {
		t.Fatal(err)
	}
	sum, err := eng.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.TableSize != 64 || sum.Trials != 3 || len(sum.Results) != 3 {
		t.Errorf("summary = %+v, want table 64, 3 trials", sum)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if len(opts) != 0 {
		t.Errorf("got %d options from empty config, want 0", len(opts))
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	if _, err := Parse([]byte("table_sise: 10\n")); err == nil {
		t.Error("expected error for misspelled key")
	}
}

func TestOptionsRejectsNonPositiveTableSize(t *testing.T) {
	for _, data := range []string{"table_size: 0\n", "table_size: -5\n"} {
		cfg, err := Parse([]byte(data))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cfg.Options(); !errors.Is(err, proberrors.ErrInvalidTableSize) {
			t.Errorf("%q: expected ErrInvalidTableSize, got %v", data, err)
		}
	}
}

func TestOptionsRejectsUnknownReduction(t *testing.T) {
	cfg, err := Parse([]byte("reduction: shift\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Options(); !errors.Is(err, proberrors.ErrUnknownReduction) {
		t.Errorf("expected ErrUnknownReduction, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.yaml")
	if err := os.WriteFile(path, []byte("trial_count: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TrialCount == nil || *cfg.TrialCount != 7 {
		t.Errorf("TrialCount = %v, want 7", cfg.TrialCount)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
