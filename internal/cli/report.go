package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/agbru/petribench/internal/format"
	"github.com/agbru/petribench/internal/metrics"
	"github.com/agbru/petribench/internal/sysmon"
	"github.com/agbru/petribench/internal/ui"
)

// RunStats gathers the resource figures shown by DisplayRunStats.
type RunStats struct {
	Iterations int
	Elapsed    time.Duration
	Alloc      metrics.AllocDelta
	After      metrics.MemorySnapshot
	// PeakRSS is zero when the platform cannot report it.
	PeakRSS uint64
	// Process is nil when process sampling failed.
	Process *sysmon.ProcessStats
	System  sysmon.Stats
}

// FormatRunStats renders the report body without a frame.
func FormatRunStats(s RunStats) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s%-16s%s %s\n", ui.ColorCyan(), label, ui.ColorReset(), value)
	}

	fmt.Fprintf(&b, "%s%sResource usage%s\n", ui.ColorBold(), ui.ColorUnderline(), ui.ColorReset())
	row("Iterations", fmt.Sprintf("%d", s.Iterations))
	row("Elapsed", format.FormatExecutionDuration(s.Elapsed))
	if s.Iterations > 0 {
		row("Per iteration", format.FormatExecutionDuration(s.Elapsed/time.Duration(s.Iterations)))
	}
	row("Allocated", fmt.Sprintf("%s in %d objects", format.FormatBytes(s.Alloc.Bytes), s.Alloc.Objects))
	row("Heap in use", format.FormatBytes(s.After.HeapAlloc))
	row("GC cycles", fmt.Sprintf("%d", s.Alloc.GCs))
	if s.PeakRSS > 0 {
		row("Peak RSS", format.FormatBytes(s.PeakRSS))
	}
	if s.Process != nil {
		row("Current RSS", format.FormatBytes(s.Process.RSS))
		row("CPU time", fmt.Sprintf("%.3fs", s.Process.CPUSeconds))
	}
	row("System CPU", formatUsage(s.System.CPUPercent))
	row("System memory", formatUsage(s.System.MemPercent))
	row("Runtime", fmt.Sprintf("%s, %d CPUs", runtime.Version(), runtime.NumCPU()))

	return strings.TrimSuffix(b.String(), "\n")
}

// Usage thresholds, in percent, above which a system figure is shown as a
// warning or an error. A loaded host skews benchmark timings.
const (
	usageWarnPercent  = 50.0
	usageErrorPercent = 80.0
)

// formatUsage renders a percentage colored by load level.
func formatUsage(pct float64) string {
	color := ui.ColorGreen()
	switch {
	case pct >= usageErrorPercent:
		color = ui.ColorRed()
	case pct >= usageWarnPercent:
		color = ui.ColorYellow()
	}
	return fmt.Sprintf("%s%.1f%%%s", color, pct, ui.ColorReset())
}

// DisplayRunStats writes the framed resource report to out.
func DisplayRunStats(out io.Writer, s RunStats) error {
	_, err := fmt.Fprintln(out, ui.ReportStyle().Render(FormatRunStats(s)))
	return err
}
