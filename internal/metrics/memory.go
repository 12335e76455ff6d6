package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	TotalAlloc   uint64 // cumulative bytes allocated
	Mallocs      uint64 // cumulative heap objects allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		TotalAlloc:   m.TotalAlloc,
		Mallocs:      m.Mallocs,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// AllocDelta summarizes what happened between two snapshots.
type AllocDelta struct {
	Bytes   uint64 // bytes allocated in between
	Objects uint64 // heap objects allocated in between
	GCs     uint32 // GC cycles completed in between
}

// Delta returns the allocation activity between before and after. The
// cumulative counters never decrease, so the result is always well defined
// for snapshots taken in order.
func Delta(before, after MemorySnapshot) AllocDelta {
	return AllocDelta{
		Bytes:   after.TotalAlloc - before.TotalAlloc,
		Objects: after.Mallocs - before.Mallocs,
		GCs:     after.NumGC - before.NumGC,
	}
}
