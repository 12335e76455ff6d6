// Package sysmon provides system-wide and per-process CPU and memory sampling.
package sysmon

import (
	"context"
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// ProcessStats holds resource usage of the current process.
type ProcessStats struct {
	RSS        uint64  // resident set size in bytes
	VMS        uint64  // virtual memory size in bytes
	CPUSeconds float64 // user + system CPU time
	NumThreads int32
}

// SampleProcess reads resource usage of the running process, the same RSS
// figure an external measure_memory/ps invocation would see.
func SampleProcess(ctx context.Context) (ProcessStats, error) {
	var ps ProcessStats
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return ps, err
	}
	memInfo, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return ps, err
	}
	ps.RSS = memInfo.RSS
	ps.VMS = memInfo.VMS

	if times, err := p.TimesWithContext(ctx); err == nil {
		ps.CPUSeconds = times.User + times.System
	}
	if n, err := p.NumThreadsWithContext(ctx); err == nil {
		ps.NumThreads = n
	}
	return ps, nil
}
