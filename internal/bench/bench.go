// Package bench measures the throughput of relative time formatting.
package bench

import (
	"fmt"
	"math"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"
	"k8s.io/utils/ptr"
)

const (
	DefaultIterations = 1000
	DefaultWarmup     = 100
)

// Options tunes a single benchmark run.
type Options struct {
	// Iterations defaults to DefaultIterations when zero or negative.
	Iterations int
	// Warmup defaults to DefaultWarmup when nil.
	Warmup *int
	// MeasureMemory records heap usage around the measured iterations.
	MeasureMemory bool
	// Log emits a log line per result.
	Log bool
}

func (o Options) iterations() int {
	if o.Iterations <= 0 {
		return DefaultIterations
	}
	return o.Iterations
}

// MemoryUsage is the live heap size before and after the measured loop.
type MemoryUsage struct {
	Before uint64
	After  uint64
}

// Delta is After-Before; it can be negative if a GC ran during the loop.
func (m MemoryUsage) Delta() int64 {
	return int64(m.After) - int64(m.Before)
}

// Result is the measurement of one benchmark.
type Result struct {
	Name       string
	Iterations int
	Total      time.Duration
	Average    time.Duration
	// OpsPerSec is zero when the elapsed time was too small to measure.
	OpsPerSec float64
	Memory    *MemoryUsage
}

// Runner runs benchmarks and keeps their results. It is safe for concurrent
// use, although concurrent runs skew each other's timings.
type Runner struct {
	clock clock.PassiveClock

	mu      sync.Mutex
	results []Result
}

// NewRunner returns a Runner timing with c, or the real clock if c is nil.
func NewRunner(c clock.PassiveClock) *Runner {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Runner{clock: c}
}

// Run warms up fn, then times opts.Iterations calls of it and records the
// result.
func (r *Runner) Run(name string, fn func(), opts Options) Result {
	n := opts.iterations()
	for range ptr.Deref(opts.Warmup, DefaultWarmup) {
		fn()
	}

	var mem *MemoryUsage
	if opts.MeasureMemory {
		runtime.GC()
		mem = &MemoryUsage{Before: heapAlloc()}
	}
	start := r.clock.Now()
	for range n {
		fn()
	}
	total := r.clock.Since(start)
	if mem != nil {
		mem.After = heapAlloc()
	}

	res := Result{
		Name:       name,
		Iterations: n,
		Total:      total,
		Average:    total / time.Duration(n),
		Memory:     mem,
	}
	if total > 0 {
		res.OpsPerSec = float64(n) / total.Seconds()
	}

	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()

	if opts.Log {
		kv := []any{"name", res.Name, "avg", res.Average, "opsPerSec", math.Round(res.OpsPerSec)}
		if mem != nil {
			kv = append(kv, "heapDelta", mem.Delta())
		}
		klog.InfoS("benchmark result", kv...)
	}
	return res
}

func heapAlloc() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc
}

// Results returns a copy of every recorded result in run order.
func (r *Runner) Results() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.results)
}

// Reset drops all recorded results.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = nil
}

// Report renders the recorded results and summary statistics as text.
func (r *Runner) Report() string {
	results := r.Results()
	if len(results) == 0 {
		return "No benchmark results available.\n"
	}

	var b strings.Builder
	b.WriteString("Performance Benchmark Report\n")
	b.WriteString("================================\n\n")
	sum, lo, hi := 0.0, math.Inf(1), math.Inf(-1)
	for i, res := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, res.Name)
		fmt.Fprintf(&b, "   Iterations: %s\n", humanize.Comma(int64(res.Iterations)))
		fmt.Fprintf(&b, "   Total Time: %s\n", shortDuration(res.Total))
		fmt.Fprintf(&b, "   Average Time: %.4fms\n", float64(res.Average)/float64(time.Millisecond))
		fmt.Fprintf(&b, "   Operations/sec: %s\n", opsPerSec(res.OpsPerSec))
		if res.Memory != nil {
			fmt.Fprintf(&b, "   Memory Delta: %s\n", signedBytes(res.Memory.Delta()))
		}
		b.WriteString("\n")
		sum += res.OpsPerSec
		lo = min(lo, res.OpsPerSec)
		hi = max(hi, res.OpsPerSec)
	}
	b.WriteString("Summary\n")
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "Average Operations/sec: %s\n", opsPerSec(sum/float64(len(results))))
	fmt.Fprintf(&b, "Min Operations/sec: %s\n", opsPerSec(lo))
	fmt.Fprintf(&b, "Max Operations/sec: %s\n", opsPerSec(hi))
	return b.String()
}

func opsPerSec(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func signedBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

// shortDuration renders d with its two most significant units, e.g. "1s250ms".
func shortDuration(d time.Duration) string {
	d = d.Truncate(time.Microsecond)
	if d <= 0 {
		return "0s"
	}
	f, err := durafmt.ParseStringShort(d.String())
	if err != nil {
		return d.String()
	}
	units, err := durafmt.DefaultUnitsCoder.Decode("yr:yr,wk:wk,d:d,h:h,m:m,s:s,ms:ms,µs:µs")
	if err != nil {
		return d.String()
	}
	return strings.ReplaceAll(f.LimitFirstN(2).Format(units), " ", "")
}
