package workload

import "testing"

func TestRun_DefaultSizes(t *testing.T) {
	t.Parallel()

	s := Run(DefaultSizes())

	if got := len(s.Records); got != 1000 {
		t.Errorf("records = %d, want 1000", got)
	}
	if got := len(s.Fibonacci); got != 50 {
		t.Errorf("fibonacci length = %d, want 50", got)
	}
	if got := s.LastFibonacci(); got != 7778742049 {
		t.Errorf("last fibonacci = %d, want 7778742049", got)
	}
	if got := len(s.Primes); got != 168 {
		t.Errorf("primes = %d, want 168", got)
	}
	largest, ok := s.LargestPrime()
	if !ok || largest != 997 {
		t.Errorf("LargestPrime() = %d, %v, want 997, true", largest, ok)
	}
	if got := s.Total(); got != 1218 {
		t.Errorf("Total() = %d, want 1218", got)
	}
}

func TestSummary_EmptyCollections(t *testing.T) {
	t.Parallel()

	var s Summary
	if s.Total() != 0 {
		t.Errorf("Total() = %d, want 0", s.Total())
	}
	if s.LastFibonacci() != 0 {
		t.Errorf("LastFibonacci() = %d, want 0", s.LastFibonacci())
	}
	if _, ok := s.LargestPrime(); ok {
		t.Error("LargestPrime() reported a prime for an empty summary")
	}
}

func TestRun_NoPrimes(t *testing.T) {
	t.Parallel()

	s := Run(Sizes{Records: 3, FibonacciCount: 2, SieveLimit: 1})
	if s.Total() != 5 {
		t.Errorf("Total() = %d, want 5", s.Total())
	}
	if _, ok := s.LargestPrime(); ok {
		t.Error("expected no primes below 2")
	}
}

func BenchmarkRun(b *testing.B) {
	sizes := DefaultSizes()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Run(sizes)
	}
}
