// Package config parses the command-line flags, environment variables and
// optional YAML profile that size the benchmark workload.
//
// Resolution order (highest priority first):
//  1. CLI flags (--records, --fib-count, ...)
//  2. Environment variables (PETRIBENCH_RECORDS, ...)
//  3. YAML profile (--config or PETRIBENCH_CONFIG)
//  4. Defaults, which reproduce the original PetriBench scripts
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/petribench/internal/errors"
	"github.com/agbru/petribench/internal/fizzbuzz"
	"github.com/agbru/petribench/internal/logging"
	"github.com/agbru/petribench/internal/workload"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "PETRIBENCH_"

// Program identifies which executable is being configured.
type Program string

// Known programs.
const (
	ProgramBenchmark Program = "benchmark"
	ProgramFizzBuzz  Program = "fizzbuzz"
)

// AppConfig aggregates the configuration of either program. Fields that do
// not apply to the running program keep their defaults and are not validated.
type AppConfig struct {
	Program Program

	// Benchmark workload sizing.
	Records        int
	FibonacciCount int
	SieveLimit     int
	Iterations     int

	// FizzBuzz range, inclusive.
	Low  int
	High int

	// Stats prints a resource usage report on stderr after the run.
	Stats bool
	// Progress shows a spinner on stderr while iterations run.
	Progress bool
	// MetricsFile, when set, receives a Prometheus textfile export.
	MetricsFile string

	LogLevel    string
	NoColor     bool
	ConfigFile  string
	ShowVersion bool
}

// Default returns the configuration that reproduces the original scripts.
func Default(program Program) AppConfig {
	sizes := workload.DefaultSizes()
	return AppConfig{
		Program:        program,
		Records:        sizes.Records,
		FibonacciCount: sizes.FibonacciCount,
		SieveLimit:     sizes.SieveLimit,
		Iterations:     1,
		Low:            fizzbuzz.DefaultLow,
		High:           fizzbuzz.DefaultHigh,
		LogLevel:       logging.DefaultLevel,
	}
}

// Sizes returns the workload sizing carried by the configuration.
func (c AppConfig) Sizes() workload.Sizes {
	return workload.Sizes{
		Records:        c.Records,
		FibonacciCount: c.FibonacciCount,
		SieveLimit:     c.SieveLimit,
	}
}

// ParseConfig parses args (without the program name) for the given program.
// Flag errors and usage go to errWriter. flag.ErrHelp is returned unchanged
// when -h or --help is used.
func ParseConfig(program Program, programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := Default(program)

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML profile overriding the defaults.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Diagnostic log level on stderr (debug, info, warn, error, off).")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colors in the stderr report.")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print the version and exit.")

	switch program {
	case ProgramBenchmark:
		fs.IntVar(&cfg.Records, "records", cfg.Records, "Number of synthetic records to allocate.")
		fs.IntVar(&cfg.FibonacciCount, "fib-count", cfg.FibonacciCount, "Length of the Fibonacci sequence.")
		fs.IntVar(&cfg.SieveLimit, "sieve-limit", cfg.SieveLimit, "Inclusive upper bound of the prime sieve.")
		fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "Number of times the workload is repeated.")
		fs.BoolVar(&cfg.Stats, "stats", false, "Print a resource usage report on stderr.")
		fs.BoolVar(&cfg.Progress, "progress", false, "Show iteration progress on stderr.")
		fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile.")
	case ProgramFizzBuzz:
		fs.IntVar(&cfg.Low, "from", cfg.Low, "First integer of the range.")
		fs.IntVar(&cfg.High, "to", cfg.High, "Last integer of the range.")
	default:
		return cfg, apperrors.NewConfigError("unknown program %q", program)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	if !isFlagSet(fs, "config") {
		cfg.ConfigFile = getEnvString("CONFIG", "")
	}
	if cfg.ConfigFile != "" {
		profile, err := LoadProfile(cfg.ConfigFile)
		if err != nil {
			return cfg, err
		}
		profile.apply(&cfg, fs)
	}

	if err := applyEnvOverrides(&cfg, fs); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every invalid setting of the running program, joined.
func (c AppConfig) Validate() error {
	var errs []error
	invalid := func(field, format string, args ...any) {
		errs = append(errs, apperrors.ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		invalid("log-level", "%v", err)
	}

	switch c.Program {
	case ProgramBenchmark:
		if c.Records < 0 {
			invalid("records", "must not be negative, got %d", c.Records)
		}
		if c.FibonacciCount < 2 || c.FibonacciCount > workload.MaxFibonacciCount {
			invalid("fib-count", "must be between 2 and %d, got %d", workload.MaxFibonacciCount, c.FibonacciCount)
		}
		if c.SieveLimit < 0 || c.SieveLimit > workload.MaxSieveLimit {
			invalid("sieve-limit", "must be between 0 and %d, got %d", workload.MaxSieveLimit, c.SieveLimit)
		}
		if c.Iterations < 1 {
			invalid("iterations", "must be at least 1, got %d", c.Iterations)
		}
	case ProgramFizzBuzz:
		if c.Low > c.High {
			invalid("from", "must not exceed --to (%d > %d)", c.Low, c.High)
		}
	}

	return errors.Join(errs...)
}
