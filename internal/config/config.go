// Package config loads experiment settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tamirms/mixprobe"
	proberrors "github.com/tamirms/mixprobe/errors"
)

// KeyRange is the closed range keys are drawn from.
type KeyRange struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// Config is the top-level configuration file. Absent fields keep the
// library defaults.
type Config struct {
	TableSize  *int64    `yaml:"table_size"`
	TrialCount *int      `yaml:"trial_count"`
	KeyRange   *KeyRange `yaml:"key_range"`
	RandomSeed *uint64   `yaml:"random_seed"`
	Reduction  string    `yaml:"reduction"`
	Format     string    `yaml:"format"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	return &cfg, nil
}

// Options converts the file into engine options. A non-positive table size
// is rejected here since the engine takes it unsigned.
func (c *Config) Options() ([]mixprobe.Option, error) {
	var opts []mixprobe.Option
	if c.TableSize != nil {
		if *c.TableSize <= 0 {
			return nil, fmt.Errorf("%w: %d", proberrors.ErrInvalidTableSize, *c.TableSize)
		}
		opts = append(opts, mixprobe.WithTableSize(uint64(*c.TableSize)))
	}
	if c.TrialCount != nil {
		opts = append(opts, mixprobe.WithTrials(*c.TrialCount))
	}
	if c.KeyRange != nil {
		opts = append(opts, mixprobe.WithKeyRange(c.KeyRange.Min, c.KeyRange.Max))
	}
	if c.RandomSeed != nil {
		opts = append(opts, mixprobe.WithSeed(*c.RandomSeed))
	}
	if c.Reduction != "" {
		r, err := mixprobe.ParseReduction(c.Reduction)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mixprobe.WithReduction(r))
	}
	return opts, nil
}
