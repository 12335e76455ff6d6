package workload

import "fmt"

// MaxSieveLimit is the largest limit SievePrimes accepts. Above it the
// limit+1 flags and the i*i bound could overflow int on 32-bit platforms.
const MaxSieveLimit = 1 << 30

// SievePrimes returns every prime in [2, limit] in ascending order using the
// sieve of Eratosthenes. It runs in O(limit log log limit) time and O(limit)
// space. A limit below 2 yields an empty slice. It panics if limit exceeds
// MaxSieveLimit.
func SievePrimes(limit int) []int {
	if limit < 2 {
		return []int{}
	}
	if limit > MaxSieveLimit {
		panic(fmt.Sprintf("workload: sieve limit %d exceeds %d", limit, MaxSieveLimit))
	}

	composite := make([]bool, limit+1)
	composite[0], composite[1] = true, true

	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	primes := make([]int, 0, estimatePrimeCount(limit))
	for i, isComposite := range composite {
		if !isComposite {
			primes = append(primes, i)
		}
	}
	return primes
}

// estimatePrimeCount roughly approximates pi(limit) to size the result slice.
// It only affects allocation, never the result.
func estimatePrimeCount(limit int) int {
	if limit < 64 {
		return 18
	}
	bits := 0
	for v := limit; v > 0; v >>= 1 {
		bits++
	}
	// limit / ln(limit), with ln approximated from the bit length.
	return limit/(bits*7/10) + 1
}
