package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/petribench/internal/workload"
)

// BenchmarkTitle is the first line printed by the benchmark program.
const BenchmarkTitle = "PetriBench Memory Benchmark"

// separatorWidth is the length of the dashed line below the title.
const separatorWidth = 30

// errWriter remembers the first write error so that a sequence of Fprintf
// calls can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// PrintBenchmarkHeader writes the title and the dashed separator.
func PrintBenchmarkHeader(out io.Writer) error {
	ew := &errWriter{w: out}
	ew.printf("%s\n", BenchmarkTitle)
	ew.printf("%s\n", strings.Repeat("-", separatorWidth))
	return ew.err
}

// DisplaySummary writes the four result lines of a workload run. When the
// sieve found no prime, the last line reads "Largest prime: none".
//
// Parameters:
//   - out: The writer for standard output.
//   - s: The summary of the run.
//   - sizes: The sizes the run was requested with.
func DisplaySummary(out io.Writer, s workload.Summary, sizes workload.Sizes) error {
	ew := &errWriter{w: out}
	ew.printf("Generated %d data entries\n", len(s.Records))
	ew.printf("Fibonacci(%d): %d numbers, last value: %d\n", sizes.FibonacciCount, len(s.Fibonacci), s.LastFibonacci())
	ew.printf("Primes up to %d: %d found\n", sizes.SieveLimit, len(s.Primes))
	if largest, ok := s.LargestPrime(); ok {
		ew.printf("Largest prime: %d\n", largest)
	} else {
		ew.printf("Largest prime: none\n")
	}
	return ew.err
}

// PrintBenchmarkFooter writes the total operation count and the completion line.
func PrintBenchmarkFooter(out io.Writer, total int) error {
	ew := &errWriter{w: out}
	ew.printf("Total operations: %d\n", total)
	ew.printf("Benchmark completed successfully\n")
	return ew.err
}
