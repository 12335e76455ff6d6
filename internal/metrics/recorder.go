package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/petribench/internal/workload"
)

const namespace = "petribench"

// Recorder collects benchmark figures in a private Prometheus registry.
// Keeping the registry private lets several recorders coexist in tests.
type Recorder struct {
	registry *prometheus.Registry

	iterations   prometheus.Counter
	duration     prometheus.Histogram
	records      prometheus.Gauge
	fibLength    prometheus.Gauge
	fibLast      prometheus.Gauge
	primesFound  prometheus.Gauge
	largestPrime prometheus.Gauge
	totalOps     prometheus.Gauge
	peakRSS      prometheus.Gauge
}

// NewRecorder creates a Recorder with the Go runtime and process collectors
// registered alongside the benchmark metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Number of completed workload iterations.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "iteration_duration_seconds",
			Help:      "Wall-clock duration of one workload iteration.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_generated",
			Help:      "Synthetic records allocated by the last iteration.",
		}),
		fibLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fibonacci_length",
			Help:      "Length of the Fibonacci sequence generated by the last iteration.",
		}),
		fibLast: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fibonacci_last_value",
			Help:      "Last Fibonacci value generated by the last iteration.",
		}),
		primesFound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "primes_found",
			Help:      "Primes found by the sieve in the last iteration.",
		}),
		largestPrime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "largest_prime",
			Help:      "Largest prime found in the last iteration, 0 if none.",
		}),
		totalOps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "operations",
			Help:      "Sum of the collection sizes of the last iteration.",
		}),
		peakRSS: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "peak_rss_bytes",
			Help:      "Peak resident set size of the process.",
		}),
	}

	r.registry.MustRegister(
		r.iterations, r.duration, r.records, r.fibLength, r.fibLast,
		r.primesFound, r.largestPrime, r.totalOps, r.peakRSS,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveIteration records the outcome of one workload iteration.
func (r *Recorder) ObserveIteration(s workload.Summary, d time.Duration) {
	r.iterations.Inc()
	r.duration.Observe(d.Seconds())
	r.records.Set(float64(len(s.Records)))
	r.fibLength.Set(float64(len(s.Fibonacci)))
	r.fibLast.Set(float64(s.LastFibonacci()))
	r.primesFound.Set(float64(len(s.Primes)))
	largest, _ := s.LargestPrime()
	r.largestPrime.Set(float64(largest))
	r.totalOps.Set(float64(s.Total()))
}

// SetPeakRSS records the process peak resident set size.
func (r *Recorder) SetPeakRSS(bytes uint64) {
	r.peakRSS.Set(float64(bytes))
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written atomically, as the textfile collector expects.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
