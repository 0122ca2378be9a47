package guidetree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting build metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    buildCounter   prometheus.Counter
//	    buildHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordBuild(sequences, leaves int, duration time.Duration, err error) {
//	    p.buildCounter.Inc()
//	    p.buildHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordBuild is called after each build.
	// leaves is 0 if the build failed.
	RecordBuild(sequences, leaves int, duration time.Duration, err error)

	// RecordSplit is called for every splitter call that ran the restart
	// loop. iterations is the total of Lloyd iterations over all attempts.
	RecordSplit(samples, iterations int, degenerate bool)

	// RecordMerge is called after each merge pass.
	RecordMerge(merged int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSplit(int, int, bool)                 {}
func (NoopMetricsCollector) RecordMerge(int, time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildTotalNanos  atomic.Int64
	SequencesTotal   atomic.Int64
	LeavesTotal      atomic.Int64
	SplitCount       atomic.Int64
	SplitIterations  atomic.Int64
	DegenerateSplits atomic.Int64
	MergePasses      atomic.Int64
	MergeErrors      atomic.Int64
	Merged           atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(sequences, leaves int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	b.SequencesTotal.Add(int64(sequences))
	b.LeavesTotal.Add(int64(leaves))
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordSplit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplit(_, iterations int, degenerate bool) {
	b.SplitCount.Add(1)
	b.SplitIterations.Add(int64(iterations))
	if degenerate {
		b.DegenerateSplits.Add(1)
	}
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(merged int, _ time.Duration, err error) {
	b.MergePasses.Add(1)
	b.Merged.Add(int64(merged))
	if err != nil {
		b.MergeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:       b.BuildCount.Load(),
		BuildErrors:      b.BuildErrors.Load(),
		BuildAvgNanos:    b.getAvgBuildNanos(),
		SequencesTotal:   b.SequencesTotal.Load(),
		LeavesTotal:      b.LeavesTotal.Load(),
		SplitCount:       b.SplitCount.Load(),
		SplitIterations:  b.SplitIterations.Load(),
		DegenerateSplits: b.DegenerateSplits.Load(),
		MergePasses:      b.MergePasses.Load(),
		MergeErrors:      b.MergeErrors.Load(),
		Merged:           b.Merged.Load(),
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
	BuildCount       int64
	BuildErrors      int64
	BuildAvgNanos    int64
	SequencesTotal   int64
	LeavesTotal      int64
	SplitCount       int64
	SplitIterations  int64
	DegenerateSplits int64
	MergePasses      int64
	MergeErrors      int64
	Merged           int64
}
