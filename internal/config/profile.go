package config

import (
	"errors"
	"flag"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/petribench/internal/errors"
)

// Profile is the YAML document accepted by --config. Every field is optional;
// absent fields leave the defaults untouched.
//
//	log_level: info
//	benchmark:
//	  records: 5000
//	  fib_count: 90
//	  sieve_limit: 100000
//	  iterations: 10
//	fizzbuzz:
//	  from: 1
//	  to: 1000
type Profile struct {
	LogLevel  *string           `yaml:"log_level"`
	Benchmark *BenchmarkProfile `yaml:"benchmark"`
	FizzBuzz  *FizzBuzzProfile  `yaml:"fizzbuzz"`
}

// BenchmarkProfile sizes the benchmark workload.
type BenchmarkProfile struct {
	Records        *int    `yaml:"records"`
	FibonacciCount *int    `yaml:"fib_count"`
	SieveLimit     *int    `yaml:"sieve_limit"`
	Iterations     *int    `yaml:"iterations"`
	Stats          *bool   `yaml:"stats"`
	MetricsFile    *string `yaml:"metrics_file"`
}

// FizzBuzzProfile sets the printed range.
type FizzBuzzProfile struct {
	From *int `yaml:"from"`
	To   *int `yaml:"to"`
}

// LoadProfile reads and decodes a YAML profile. Unknown keys are rejected so
// that typos do not silently fall back to defaults. An empty file is a valid,
// empty profile.
func LoadProfile(path string) (Profile, error) {
	var p Profile

	f, err := os.Open(path)
	if err != nil {
		return p, apperrors.NewConfigError("opening profile: %v", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return p, apperrors.NewConfigError("parsing profile %s: %v", path, err)
	}
	return p, nil
}

// apply copies profile values into cfg for every setting whose flag was not
// given on the command line.
func (p Profile) apply(cfg *AppConfig, fs *flag.FlagSet) {
	setString(fs, "log-level", p.LogLevel, &cfg.LogLevel)

	if b := p.Benchmark; b != nil {
		setInt(fs, "records", b.Records, &cfg.Records)
		setInt(fs, "fib-count", b.FibonacciCount, &cfg.FibonacciCount)
		setInt(fs, "sieve-limit", b.SieveLimit, &cfg.SieveLimit)
		setInt(fs, "iterations", b.Iterations, &cfg.Iterations)
		if b.Stats != nil && !isFlagSet(fs, "stats") {
			cfg.Stats = *b.Stats
		}
		setString(fs, "metrics-file", b.MetricsFile, &cfg.MetricsFile)
	}
	if z := p.FizzBuzz; z != nil {
		setInt(fs, "from", z.From, &cfg.Low)
		setInt(fs, "to", z.To, &cfg.High)
	}
}

func setInt(fs *flag.FlagSet, name string, src, dst *int) {
	if src != nil && !isFlagSet(fs, name) {
		*dst = *src
	}
}

func setString(fs *flag.FlagSet, name string, src, dst *string) {
	if src != nil && !isFlagSet(fs, name) {
		*dst = *src
	}
}
