// Package workload implements the memory/CPU load generated by the PetriBench
// benchmark program: a bounded Fibonacci sequence, a sieve of Eratosthenes and
// a batch of synthetic records. Every function is pure and deterministic, so
// repeated runs with the same sizes produce identical results.
package workload
