// This file contains environment variable utilities for configuration override.

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/petribench/internal/errors"
)

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps an env key (without the PETRIBENCH_ prefix) to the CLI
// flag(s) it shadows and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string) error
}

func intOverride(target func(*AppConfig) *int) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("not an integer: %q", v)
		}
		*target(c) = parsed
		return nil
	}
}

func boolOverride(target func(*AppConfig) *bool) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		p := target(c)
		*p = parseBoolEnv(v, *p)
		return nil
	}
}

func stringOverride(target func(*AppConfig) *string) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		*target(c) = v
		return nil
	}
}

// envOverrides is the declarative table of all environment variable overrides.
// Malformed numeric values are reported as validation errors.
var envOverrides = []envOverride{
	// Numeric overrides
	{"RECORDS", []string{"records"}, intOverride(func(c *AppConfig) *int { return &c.Records })},
	{"FIB_COUNT", []string{"fib-count"}, intOverride(func(c *AppConfig) *int { return &c.FibonacciCount })},
	{"SIEVE_LIMIT", []string{"sieve-limit"}, intOverride(func(c *AppConfig) *int { return &c.SieveLimit })},
	{"ITERATIONS", []string{"iterations"}, intOverride(func(c *AppConfig) *int { return &c.Iterations })},
	{"FROM", []string{"from"}, intOverride(func(c *AppConfig) *int { return &c.Low })},
	{"TO", []string{"to"}, intOverride(func(c *AppConfig) *int { return &c.High })},

	// String overrides
	{"METRICS_FILE", []string{"metrics-file"}, stringOverride(func(c *AppConfig) *string { return &c.MetricsFile })},
	{"LOG_LEVEL", []string{"log-level"}, stringOverride(func(c *AppConfig) *string { return &c.LogLevel })},

	// Boolean overrides
	{"STATS", []string{"stats"}, boolOverride(func(c *AppConfig) *bool { return &c.Stats })},
	{"PROGRESS", []string{"progress"}, boolOverride(func(c *AppConfig) *bool { return &c.Progress })},
	{"NO_COLOR", []string{"no-color"}, boolOverride(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line. Values that
// cannot be parsed are returned as joined ValidationErrors named after the
// variable.
//
// Supported environment variables (all prefixed with PETRIBENCH_):
//   - RECORDS, FIB_COUNT, SIEVE_LIMIT, ITERATIONS, FROM, TO,
//     METRICS_FILE, LOG_LEVEL, STATS, PROGRESS, NO_COLOR, CONFIG
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	var errs []error
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		val := os.Getenv(EnvPrefix + o.envKey)
		if val == "" {
			continue
		}
		if err := o.apply(config, val); err != nil {
			errs = append(errs, apperrors.ValidationError{Field: EnvPrefix + o.envKey, Message: err.Error()})
		}
	}
	return errors.Join(errs...)
}
