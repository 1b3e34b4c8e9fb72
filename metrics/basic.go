package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Basic is a simple in-memory implementation of Recorder.
// It is concurrency-safe and tracks handled/failed counts plus an aggregate
// of handler latency (count, sum, min, max). It does not maintain buckets;
// it's intended as a lightweight, general-purpose aggregator.
type Basic struct {
	handled atomic.Int64
	failed  atomic.Int64

	mu    sync.Mutex
	count int64
	sum   time.Duration
	min   time.Duration
	max   time.Duration
}

// NewBasic constructs a new Basic recorder.
func NewBasic() *Basic { return &Basic{} }

// MessageHandled records a successful invocation.
func (b *Basic) MessageHandled(d time.Duration) {
	b.handled.Add(1)
	b.observe(d)
}

// MessageFailed records a failed invocation.
func (b *Basic) MessageFailed(d time.Duration) {
	b.failed.Add(1)
	b.observe(d)
}

func (b *Basic) observe(d time.Duration) {
	b.mu.Lock()
	if b.count == 0 {
		// initialize min/max on first observation
		b.min, b.max = d, d
	} else {
		if d < b.min {
			b.min = d
		}
		if d > b.max {
			b.max = d
		}
	}
	b.count++
	b.sum += d
	b.mu.Unlock()
}

// Snapshot is an immutable view of a Basic recorder's state.
type Snapshot struct {
	Handled int64
	Failed  int64
	Count   int64
	Sum     time.Duration
	Min     time.Duration
	Max     time.Duration
	Mean    time.Duration
}

// Snapshot returns a copy of the recorder state at the time of call.
func (b *Basic) Snapshot() Snapshot {
	b.mu.Lock()
	count := b.count
	sum := b.sum
	min := b.min
	max := b.max
	b.mu.Unlock()

	var mean time.Duration
	if count > 0 {
		mean = sum / time.Duration(count)
	}
	return Snapshot{
		Handled: b.handled.Load(),
		Failed:  b.failed.Load(),
		Count:   count,
		Sum:     sum,
		Min:     min,
		Max:     max,
		Mean:    mean,
	}
}
