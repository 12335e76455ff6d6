package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/petribench/internal/cli"
	apperrors "github.com/agbru/petribench/internal/errors"
	"github.com/agbru/petribench/internal/logging"
	"github.com/agbru/petribench/internal/metrics"
	"github.com/agbru/petribench/internal/sysmon"
	"github.com/agbru/petribench/internal/ui"
	"github.com/agbru/petribench/internal/workload"
)

// runBenchmark runs the memory benchmark: header, the workload repeated
// Config.Iterations times, the summary of the last iteration and the footer.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	sizes := a.Config.Sizes()
	ctx, span := a.tracer.Start(ctx, "benchmark", trace.WithAttributes(
		attribute.Int("petribench.records", sizes.Records),
		attribute.Int("petribench.fibonacci_count", sizes.FibonacciCount),
		attribute.Int("petribench.sieve_limit", sizes.SieveLimit),
		attribute.Int("petribench.iterations", a.Config.Iterations),
	))
	defer span.End()

	if err := cli.PrintBenchmarkHeader(out); err != nil {
		return a.fail(span, apperrors.OutputError{Target: "stdout", Cause: err})
	}

	var recorder *metrics.Recorder
	if a.Config.MetricsFile != "" {
		recorder = metrics.NewRecorder()
	}

	var progress *cli.IterationProgress
	if a.Config.Progress {
		progress = cli.NewIterationProgress(a.ErrWriter, a.Config.Iterations)
		progress.Start()
	}
	stopProgress := func() {
		if progress != nil {
			progress.Stop()
			progress = nil
		}
	}
	defer stopProgress()

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	start := time.Now()

	var summary workload.Summary
	for i := 1; i <= a.Config.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return a.fail(span, apperrors.WrapError(err, "interrupted before iteration %d", i))
		}
		summary = a.runIteration(ctx, i, sizes, recorder)
		if progress != nil {
			progress.Update(i)
		}
	}

	elapsed := time.Since(start)
	after := collector.Snapshot()
	stopProgress()

	a.Logger.Info("benchmark finished",
		logging.Int("iterations", a.Config.Iterations),
		logging.Int("total", summary.Total()),
		logging.Float64("elapsed_ms", float64(elapsed.Microseconds())/1000),
	)

	if err := cli.DisplaySummary(out, summary, sizes); err != nil {
		return a.fail(span, apperrors.OutputError{Target: "stdout", Cause: err})
	}
	if err := cli.PrintBenchmarkFooter(out, summary.Total()); err != nil {
		return a.fail(span, apperrors.OutputError{Target: "stdout", Cause: err})
	}
	span.SetAttributes(attribute.Int("petribench.total_operations", summary.Total()))

	if a.Config.Stats {
		if err := a.reportStats(ctx, elapsed, before, after); err != nil {
			return a.fail(span, apperrors.OutputError{Target: "stderr", Cause: err})
		}
	}

	if recorder != nil {
		if rss, err := metrics.PeakRSS(); err == nil {
			recorder.SetPeakRSS(rss)
		}
		if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			return a.fail(span, apperrors.OutputError{Target: a.Config.MetricsFile, Cause: err})
		}
		a.Logger.Info("metrics written", logging.String("path", a.Config.MetricsFile))
	}

	return apperrors.ExitSuccess
}

// runIteration performs one workload pass inside its own span.
func (a *Application) runIteration(ctx context.Context, i int, sizes workload.Sizes, recorder *metrics.Recorder) workload.Summary {
	_, span := a.tracer.Start(ctx, "benchmark.iteration", trace.WithAttributes(
		attribute.Int("petribench.iteration", i),
	))
	defer span.End()

	start := time.Now()
	summary := workload.Run(sizes)
	d := time.Since(start)

	largest, _ := summary.LargestPrime()
	span.SetAttributes(
		attribute.Int("petribench.primes_found", len(summary.Primes)),
		attribute.Int("petribench.largest_prime", largest),
	)
	if recorder != nil {
		recorder.ObserveIteration(summary, d)
	}
	a.Logger.Debug("iteration done",
		logging.Int("iteration", i),
		logging.Int("total", summary.Total()),
		logging.Uint64("fibonacci_last", summary.LastFibonacci()),
	)
	return summary
}

// reportStats prints the resource usage report on stderr. Figures that the
// platform cannot provide are left out of the report.
func (a *Application) reportStats(ctx context.Context, elapsed time.Duration, before, after metrics.MemorySnapshot) error {
	stats := cli.RunStats{
		Iterations: a.Config.Iterations,
		Elapsed:    elapsed,
		Alloc:      metrics.Delta(before, after),
		After:      after,
		System:     sysmon.Sample(),
	}
	if rss, err := metrics.PeakRSS(); err == nil {
		stats.PeakRSS = rss
	} else {
		a.Logger.Debug("peak RSS unavailable", logging.Err(err))
	}
	if ps, err := sysmon.SampleProcess(ctx); err == nil {
		stats.Process = &ps
	} else {
		a.Logger.Debug("process stats unavailable", logging.Err(err))
	}

	ui.InitTheme(a.Config.NoColor)
	return cli.DisplayRunStats(a.ErrWriter, stats)
}
