// Package metrics measures what the benchmark workload costs: Go heap
// statistics, the process peak resident set size, and a Prometheus export of
// per-run figures for the node_exporter textfile collector.
package metrics
