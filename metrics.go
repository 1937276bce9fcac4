package supertrie

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert.
	// err is nil if the pair was stored.
	RecordInsert(duration time.Duration, err error)

	// RecordQuery is called after each query. results is the number of
	// boundaries returned, visited and pruned count trie nodes.
	RecordQuery(results, visited, pruned int, duration time.Duration, err error)

	// RecordRebuild is called after the trie was rebuilt with a new order.
	RecordRebuild(entries int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)               {}
func (NoopMetricsCollector) RecordQuery(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRebuild(int, time.Duration)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	QueryCount        atomic.Int64
	QueryErrors       atomic.Int64
	QueryResults      atomic.Int64
	QueryVisited      atomic.Int64
	QueryPruned       atomic.Int64
	QueryTotalNanos   atomic.Int64
	RebuildCount      atomic.Int64
	RebuildEntries    atomic.Int64
	RebuildTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(results, visited, pruned int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
		return
	}
	b.QueryResults.Add(int64(results))
	b.QueryVisited.Add(int64(visited))
	b.QueryPruned.Add(int64(pruned))
}

// RecordRebuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRebuild(entries int, duration time.Duration) {
	b.RebuildCount.Add(1)
	b.RebuildEntries.Add(int64(entries))
	b.RebuildTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertErrors:   b.InsertErrors.Load(),
		InsertAvgNanos: avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		QueryCount:     b.QueryCount.Load(),
		QueryErrors:    b.QueryErrors.Load(),
		QueryResults:   b.QueryResults.Load(),
		QueryVisited:   b.QueryVisited.Load(),
		QueryPruned:    b.QueryPruned.Load(),
		QueryAvgNanos:  avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		RebuildCount:   b.RebuildCount.Load(),
		RebuildEntries: b.RebuildEntries.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertErrors   int64
	InsertAvgNanos int64
	QueryCount     int64
	QueryErrors    int64
	QueryResults   int64
	QueryVisited   int64
	QueryPruned    int64
	QueryAvgNanos  int64
	RebuildCount   int64
	RebuildEntries int64
}
