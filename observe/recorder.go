package observe

import (
	"sync"
	"time"
)

// DefaultMaxCallMetrics bounds the in-memory call-metric list.
const DefaultMaxCallMetrics = 1000

// CallMetric is one recorded gateway call, kept for operator snapshots.
type CallMetric struct {
	Operation string        `json:"operation"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
	Success   bool          `json:"success"`
	CacheHit  bool          `json:"cache_hit"`
}

// Recorder keeps a bounded, append-only list of call metrics. Once the
// maximum count is exceeded the oldest entries are dropped.
//
// Contract:
// - Concurrency: safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	max     int
	entries []CallMetric
}

// NewRecorder creates a Recorder holding at most max entries. A max of
// zero or less falls back to DefaultMaxCallMetrics.
func NewRecorder(max int) *Recorder {
	if max <= 0 {
		max = DefaultMaxCallMetrics
	}
	return &Recorder{max: max}
}

// Record appends a call metric, rotating out the oldest entry when the
// bound is exceeded.
func (r *Recorder) Record(m CallMetric) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, m)
	if len(r.entries) > r.max {
		over := len(r.entries) - r.max
		r.entries = append(r.entries[:0], r.entries[over:]...)
	}
}

// Snapshot returns a copy of the recorded metrics, oldest first.
func (r *Recorder) Snapshot() []CallMetric {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]CallMetric, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len reports the current number of recorded metrics.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
