package observe

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRecorder_RecordAndSnapshot(t *testing.T) {
	r := NewRecorder(10)

	m := CallMetric{
		Operation: "list_chains",
		Duration:  50 * time.Millisecond,
		Timestamp: time.Now(),
		Success:   true,
	}
	r.Record(m)

	snap := r.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("Snapshot length = %d, want 1", len(snap))
	}
	if snap[0] != m {
		t.Errorf("Snapshot[0] = %+v, want %+v", snap[0], m)
	}
}

func TestRecorder_RotatesOldest(t *testing.T) {
	r := NewRecorder(3)

	for i := 0; i < 5; i++ {
		r.Record(CallMetric{Operation: fmt.Sprintf("op-%d", i)})
	}

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Snapshot length = %d, want 3", len(snap))
	}
	// Oldest entries dropped, order preserved.
	for i, want := range []string{"op-2", "op-3", "op-4"} {
		if snap[i].Operation != want {
			t.Errorf("Snapshot[%d].Operation = %q, want %q", i, snap[i].Operation, want)
		}
	}
}

func TestRecorder_SnapshotIsACopy(t *testing.T) {
	r := NewRecorder(10)
	r.Record(CallMetric{Operation: "a"})

	snap := r.Snapshot()
	snap[0].Operation = "mutated"

	if r.Snapshot()[0].Operation != "a" {
		t.Error("mutating a snapshot must not affect the recorder")
	}
}

func TestRecorder_DefaultBound(t *testing.T) {
	r := NewRecorder(0)
	for i := 0; i < DefaultMaxCallMetrics+50; i++ {
		r.Record(CallMetric{Operation: "op"})
	}
	if r.Len() != DefaultMaxCallMetrics {
		t.Errorf("Len = %d, want %d", r.Len(), DefaultMaxCallMetrics)
	}
}

func TestRecorder_ConcurrentRecord(t *testing.T) {
	r := NewRecorder(100)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Record(CallMetric{Operation: "op"})
				_ = r.Snapshot()
			}
		}()
	}
	wg.Wait()

	if r.Len() != 100 {
		t.Errorf("Len = %d, want bound of 100", r.Len())
	}
}
