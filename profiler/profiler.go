// Package profiler - Timing and memory statistics for repeated operations, used
// by the bench command.
package profiler

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"
)

// DefaultMaxSamples bounds the durations kept per operation.
const DefaultMaxSamples = 10000

// Profiler tracks operation timings and custom metrics. It is safe for
// concurrent use.
type Profiler struct {
	mu         sync.RWMutex
	startTime  time.Time
	maxSamples int

	operations map[string]*TimeTracker
	metrics    map[string]*MetricTracker

	startMem runtime.MemStats
}

// TimeTracker tracks timing statistics for one operation.
type TimeTracker struct {
	name      string
	durations []time.Duration
	totalTime time.Duration
	minTime   time.Duration
	maxTime   time.Duration
	count     int64
}

// MetricTracker tracks statistics for a custom metric.
type MetricTracker struct {
	name  string
	sum   float64
	min   float64
	max   float64
	count int64
}

// OperationStats is a snapshot of one TimeTracker.
type OperationStats struct {
	Name  string        `json:"name" yaml:"name"`
	Count int64         `json:"count" yaml:"count"`
	Total time.Duration `json:"total" yaml:"total"`
	Min   time.Duration `json:"min" yaml:"min"`
	Max   time.Duration `json:"max" yaml:"max"`
	Avg   time.Duration `json:"avg" yaml:"avg"`
	P50   time.Duration `json:"p50" yaml:"p50"`
	P95   time.Duration `json:"p95" yaml:"p95"`
}

// MetricStats is a snapshot of one MetricTracker.
type MetricStats struct {
	Name  string  `json:"name" yaml:"name"`
	Count int64   `json:"count" yaml:"count"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Avg   float64 `json:"avg" yaml:"avg"`
}

// New creates a profiler.
//
// Arguments:
// - maxSamples: Durations kept per operation for percentiles. Zero means
// DefaultMaxSamples. Count, Min, Max and Avg always cover every sample.
func New(maxSamples int) *Profiler {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	p := &Profiler{
		startTime:  time.Now(),
		maxSamples: maxSamples,
		operations: make(map[string]*TimeTracker),
		metrics:    make(map[string]*MetricTracker),
	}
	runtime.ReadMemStats(&p.startMem)
	return p
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track.
//
// Returns:
// - A function to call when the operation completes.
//
// @example
//
//	done := prof.StartOperation("coins")
//	_, err := loader.Coins()
//	done()
func (p *Profiler) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		p.RecordDuration(name, time.Since(start))
	}
}

// RecordDuration records the completion time of an operation.
func (p *Profiler) RecordDuration(name string, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.operations[name]
	if !exists {
		tracker = &TimeTracker{
			name:    name,
			minTime: duration,
			maxTime: duration,
		}
		p.operations[name] = tracker
	}

	tracker.durations = append(tracker.durations, duration)
	if len(tracker.durations) > p.maxSamples {
		tracker.durations = tracker.durations[1:]
	}

	tracker.totalTime += duration
	tracker.count++

	if duration < tracker.minTime {
		tracker.minTime = duration
	}
	if duration > tracker.maxTime {
		tracker.maxTime = duration
	}
}

// RecordMetric records a custom metric value, e.g. decoded bytes.
func (p *Profiler) RecordMetric(name string, value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.metrics[name]
	if !exists {
		tracker = &MetricTracker{name: name, min: value, max: value}
		p.metrics[name] = tracker
	}

	tracker.sum += value
	tracker.count++
	if value < tracker.min {
		tracker.min = value
	}
	if value > tracker.max {
		tracker.max = value
	}
}

// Operations returns timing snapshots sorted by name.
func (p *Profiler) Operations() []OperationStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := make([]OperationStats, 0, len(p.operations))
	for _, t := range p.operations {
		sorted := append([]time.Duration(nil), t.durations...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		stats = append(stats, OperationStats{
			Name:  t.name,
			Count: t.count,
			Total: t.totalTime,
			Min:   t.minTime,
			Max:   t.maxTime,
			Avg:   t.totalTime / time.Duration(t.count),
			P50:   percentile(sorted, 50),
			P95:   percentile(sorted, 95),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}

// Metrics returns metric snapshots sorted by name.
func (p *Profiler) Metrics() []MetricStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := make([]MetricStats, 0, len(p.metrics))
	for _, m := range p.metrics {
		stats = append(stats, MetricStats{
			Name:  m.name,
			Count: m.count,
			Min:   m.min,
			Max:   m.max,
			Avg:   m.sum / float64(m.count),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}

// Report writes a human readable summary to w.
func (p *Profiler) Report(w io.Writer) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Fprintf(w, "PROFILER REPORT - %s\n", time.Now().Format("15:04:05.000"))
	fmt.Fprintf(w, "Elapsed: %v\n", time.Since(p.startTime).Truncate(time.Millisecond))

	fmt.Fprintf(w, "\nMEMORY USAGE:\n")
	fmt.Fprintf(w, "  Total Alloc: %s\n", formatBytes(mem.TotalAlloc-p.startMem.TotalAlloc))
	fmt.Fprintf(w, "  Heap Alloc: %s\n", formatBytes(mem.HeapAlloc))
	fmt.Fprintf(w, "  GC Cycles: %d\n", mem.NumGC-p.startMem.NumGC)

	if ops := p.Operations(); len(ops) > 0 {
		fmt.Fprintf(w, "\nOPERATION TIMINGS:\n")
		for _, s := range ops {
			fmt.Fprintf(w, "  %s: avg=%v, p50=%v, p95=%v, min=%v, max=%v, count=%d\n",
				s.Name,
				s.Avg.Truncate(time.Microsecond),
				s.P50.Truncate(time.Microsecond),
				s.P95.Truncate(time.Microsecond),
				s.Min.Truncate(time.Microsecond),
				s.Max.Truncate(time.Microsecond),
				s.Count)
		}
	}

	if metrics := p.Metrics(); len(metrics) > 0 {
		fmt.Fprintf(w, "\nCUSTOM METRICS:\n")
		for _, s := range metrics {
			fmt.Fprintf(w, "  %s: avg=%.2f, min=%.2f, max=%.2f, samples=%d\n",
				s.Name, s.Avg, s.Min, s.Max, s.Count)
		}
	}
}

// percentile uses the nearest rank on sorted durations.
func percentile(sorted []time.Duration, q int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := (q*len(sorted)+99)/100 - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// formatBytes formats byte counts in human-readable format.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
