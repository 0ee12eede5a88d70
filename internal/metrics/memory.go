// Package metrics reads process-level runtime statistics for the heap usage
// line written alongside the final metrics.
package metrics

import (
	"fmt"
	"runtime"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by application
	HeapSys     uint64 // bytes obtained from OS for heap
	Sys         uint64 // total bytes obtained from OS
	NumGC       uint32 // number of completed GC cycles
	HeapObjects uint64 // number of allocated heap objects
}

// String renders the snapshot the way it appears in the audit log.
func (s MemorySnapshot) String() string {
	return fmt.Sprintf("heap usage - alloc: %d KiB | objects: %d | gc cycles: %d",
		s.HeapAlloc/1024, s.HeapObjects, s.NumGC)
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
		HeapAlloc:   m.HeapAlloc,
		HeapSys:     m.HeapSys,
		Sys:         m.Sys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}
