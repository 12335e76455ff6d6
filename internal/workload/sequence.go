package workload

// MaxFibonacciCount is the longest sequence whose last element, F(93), still
// fits in a uint64.
const MaxFibonacciCount = 94

// GenerateFibonacci returns the first count Fibonacci numbers, seeded with 0
// and 1. A count of two or less yields the two seeds alone.
//
// Callers are expected to keep count within MaxFibonacciCount; past that bound
// the additions wrap around.
func GenerateFibonacci(count int) []uint64 {
	capacity := count
	if capacity < 2 {
		capacity = 2
	}
	sequence := make([]uint64, 2, capacity)
	sequence[0], sequence[1] = 0, 1
	for len(sequence) < count {
		n := len(sequence)
		sequence = append(sequence, sequence[n-1]+sequence[n-2])
	}
	return sequence
}
