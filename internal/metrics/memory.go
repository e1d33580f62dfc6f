package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	TotalAlloc   uint64 // cumulative bytes allocated
}

// MemoryDelta is the change between two snapshots taken around one phase.
type MemoryDelta struct {
	// Allocated is the number of bytes allocated during the phase.
	Allocated uint64
	// GCCycles is the number of collections that completed during the phase.
	GCCycles uint32
	// PauseNs is the GC pause time accumulated during the phase.
	PauseNs uint64
	// PeakHeap is the larger of the two HeapAlloc readings.
	PeakHeap uint64
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
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		TotalAlloc:   m.TotalAlloc,
	}
}

// Delta returns the change from before to after. Cumulative counters never
// decrease, so a reversed pair yields zeros rather than wrapping around.
func Delta(before, after MemorySnapshot) MemoryDelta {
	d := MemoryDelta{PeakHeap: max(before.HeapAlloc, after.HeapAlloc)}
	if after.TotalAlloc > before.TotalAlloc {
		d.Allocated = after.TotalAlloc - before.TotalAlloc
	}
	if after.NumGC > before.NumGC {
		d.GCCycles = after.NumGC - before.NumGC
	}
	if after.PauseTotalNs > before.PauseTotalNs {
		d.PauseNs = after.PauseTotalNs - before.PauseTotalNs
	}
	return d
}
