package workload

// Default workload sizes, matching the original PetriBench benchmark.
const (
	DefaultRecords        = 1000
	DefaultFibonacciCount = 50
	DefaultSieveLimit     = 1000
)

// Sizes controls how much work a single Run performs.
type Sizes struct {
	// Records is the number of synthetic records to allocate.
	Records int
	// FibonacciCount is the length of the generated Fibonacci sequence.
	FibonacciCount int
	// SieveLimit is the inclusive upper bound of the prime sieve.
	SieveLimit int
}

// DefaultSizes returns the sizes used by the original benchmark.
func DefaultSizes() Sizes {
	return Sizes{
		Records:        DefaultRecords,
		FibonacciCount: DefaultFibonacciCount,
		SieveLimit:     DefaultSieveLimit,
	}
}

// Summary holds the collections produced by a Run. They are kept alive until
// the caller drops the Summary, which is what makes the memory measurable.
type Summary struct {
	Records   []Record
	Fibonacci []uint64
	Primes    []int
}

// Total returns the sum of the three collection sizes, reported by the
// benchmark as "Total operations".
func (s Summary) Total() int {
	return len(s.Records) + len(s.Fibonacci) + len(s.Primes)
}

// LastFibonacci returns the final element of the Fibonacci sequence.
func (s Summary) LastFibonacci() uint64 {
	if len(s.Fibonacci) == 0 {
		return 0
	}
	return s.Fibonacci[len(s.Fibonacci)-1]
}

// LargestPrime returns the largest prime found and whether any was found.
func (s Summary) LargestPrime() (int, bool) {
	if len(s.Primes) == 0 {
		return 0, false
	}
	return s.Primes[len(s.Primes)-1], true
}

// Run performs one pass of the benchmark workload: records first, then the
// Fibonacci sequence, then the sieve.
func Run(sizes Sizes) Summary {
	records := BuildSyntheticRecords(sizes.Records)
	fib := GenerateFibonacci(sizes.FibonacciCount)
	primes := SievePrimes(sizes.SieveLimit)
	return Summary{
		Records:   records,
		Fibonacci: fib,
		Primes:    primes,
	}
}
