// Package logging provides a unified logging interface for the benchmark
// programs. It abstracts the underlying logging implementation so that
// diagnostics always go to stderr and never mix with the measured stdout.
package logging
