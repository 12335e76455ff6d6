// Package fizzbuzz prints the FizzBuzz classification of an integer range.
package fizzbuzz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Default range printed by the fizzbuzz program.
const (
	DefaultLow  = 1
	DefaultHigh = 100
)

// Classify returns "FizzBuzz" for multiples of 15, "Fizz" for other multiples
// of 3, "Buzz" for other multiples of 5 and the decimal form of n otherwise.
func Classify(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(n)
	}
}

// Run writes one classification line for every integer in [low, high].
// Nothing is written when low > high.
func Run(w io.Writer, low, high int) error {
	bw := bufio.NewWriter(w)
	for i := low; i <= high; i++ {
		if _, err := bw.WriteString(Classify(i)); err != nil {
			return fmt.Errorf("writing line %d: %w", i, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing line %d: %w", i, err)
		}
		// Guard against wrapping when high is math.MaxInt.
		if i == high {
			break
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
