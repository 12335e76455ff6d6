package workload

import "fmt"

func ExampleGenerateFibonacci() {
	fmt.Println(GenerateFibonacci(10))
	// Output:
	// [0 1 1 2 3 5 8 13 21 34]
}

func ExampleSievePrimes() {
	fmt.Println(SievePrimes(30))
	fmt.Println(len(SievePrimes(1)))
	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
	// 0
}

func ExampleRun() {
	s := Run(DefaultSizes())
	largest, _ := s.LargestPrime()
	fmt.Println(len(s.Records), s.LastFibonacci(), len(s.Primes), largest, s.Total())
	// Output:
	// 1000 7778742049 168 997 1218
}
