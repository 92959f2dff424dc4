package raptor

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each artifact store lookup.
	// hit reports whether a usable table was found, err is nil if the read succeeded.
	RecordLoad(hit bool, duration time.Duration, err error)

	// RecordBuild is called after each table computation.
	// entries is the table length.
	RecordBuild(entries int, duration time.Duration, err error)

	// RecordStore is called after each artifact write attempt.
	RecordStore(duration time.Duration, err error)

	// RecordCorruption is called when a stored artifact is discarded.
	RecordCorruption()

	// RecordMemoryHit is called when the in-process cache serves a table.
	RecordMemoryHit()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordBuild(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordStore(time.Duration, error)      {}
func (NoopMetricsCollector) RecordCorruption()                     {}
func (NoopMetricsCollector) RecordMemoryHit()                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount       atomic.Int64
	LoadHits        atomic.Int64
	LoadErrors      atomic.Int64
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildEntries    atomic.Int64
	BuildTotalNanos atomic.Int64
	StoreCount      atomic.Int64
	StoreErrors     atomic.Int64
	Corruptions     atomic.Int64
	MemoryHits      atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(hit bool, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if hit {
		b.LoadHits.Add(1)
	}
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(entries int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildEntries.Add(int64(entries))
}

// RecordStore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStore(duration time.Duration, err error) {
	b.StoreCount.Add(1)
	if err != nil {
		b.StoreErrors.Add(1)
	}
}

// RecordCorruption implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCorruption() {
	b.Corruptions.Add(1)
}

// RecordMemoryHit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMemoryHit() {
	b.MemoryHits.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:     b.LoadCount.Load(),
		LoadHits:      b.LoadHits.Load(),
		LoadErrors:    b.LoadErrors.Load(),
		BuildCount:    b.BuildCount.Load(),
		BuildErrors:   b.BuildErrors.Load(),
		BuildEntries:  b.BuildEntries.Load(),
		BuildAvgNanos: b.getAvgBuildNanos(),
		StoreCount:    b.StoreCount.Load(),
		StoreErrors:   b.StoreErrors.Load(),
		Corruptions:   b.Corruptions.Load(),
		MemoryHits:    b.MemoryHits.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount     int64
	LoadHits      int64
	LoadErrors    int64
	BuildCount    int64
	BuildErrors   int64
	BuildEntries  int64
	BuildAvgNanos int64
	StoreCount    int64
	StoreErrors   int64
	Corruptions   int64
	MemoryHits    int64
}
