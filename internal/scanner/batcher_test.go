package scanner

import (
	"testing"
	"time"

	"github.com/lumipallolabs/pathdive/internal/model"
)

func TestBatcherThrottle(t *testing.T) {
	var got []Snapshot
	b := NewBatcher(100*time.Millisecond, func(s Snapshot) {
		got = append(got, s)
	})

	base := time.Now()

	b.Tick()
	b.Record(model.Entry{Path: "/one", Length: 4})
	b.MaybeFlush(base) // first discovery flushes immediately
	if len(got) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(got))
	}
	if got[0].Scanned != 1 || len(got[0].NewEntries) != 1 {
		t.Errorf("snapshot 1: scanned=%d entries=%d", got[0].Scanned, len(got[0].NewEntries))
	}

	b.Tick()
	b.Record(model.Entry{Path: "/two", Length: 4})
	b.MaybeFlush(base.Add(50 * time.Millisecond)) // still inside the window
	if len(got) != 1 {
		t.Fatalf("flush inside throttle window, got %d snapshots", len(got))
	}

	b.MaybeFlush(base.Add(150 * time.Millisecond))
	if len(got) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(got))
	}
	if got[1].Scanned != 2 {
		t.Errorf("expected cumulative scanned 2, got %d", got[1].Scanned)
	}
	if len(got[1].NewEntries) != 1 || got[1].NewEntries[0].Path != "/two" {
		t.Errorf("expected only the new entry in snapshot 2, got %v", got[1].NewEntries)
	}
}

func TestBatcherFlushAlwaysEmits(t *testing.T) {
	var got []Snapshot
	b := NewBatcher(100*time.Millisecond, func(s Snapshot) {
		got = append(got, s)
	})

	// Nothing recorded, nothing ticked: the final flush still emits so
	// the consumer learns the (zero) final count
	b.Flush()

	if len(got) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(got))
	}
	if got[0].Scanned != 0 || len(got[0].NewEntries) != 0 {
		t.Errorf("expected empty snapshot, got %+v", got[0])
	}
}

func TestBatcherEntryEmittedOnce(t *testing.T) {
	var got []Snapshot
	b := NewBatcher(time.Millisecond, func(s Snapshot) {
		got = append(got, s)
	})

	base := time.Now()
	b.Record(model.Entry{Path: "/x", Length: 2})
	b.MaybeFlush(base)
	b.MaybeFlush(base.Add(10 * time.Millisecond))
	b.Flush()

	total := 0
	for _, s := range got {
		total += len(s.NewEntries)
	}
	if total != 1 {
		t.Errorf("entry emitted %d times across snapshots, want 1", total)
	}
}

func TestBatcherSizeCapFlush(t *testing.T) {
	var got []Snapshot
	b := NewBatcher(time.Hour, func(s Snapshot) {
		got = append(got, s)
	})

	base := time.Now()
	b.MaybeFlush(base) // establish lastFlush so the interval never elapses

	for i := 0; i < maxPending; i++ {
		b.Tick()
		b.Record(model.Entry{Path: "/p", Length: 2})
		b.MaybeFlush(base.Add(time.Millisecond))
	}

	if len(got) != 2 {
		t.Fatalf("expected size-cap flush, got %d snapshots", len(got))
	}
	if len(got[1].NewEntries) != maxPending {
		t.Errorf("expected %d entries in capped flush, got %d", maxPending, len(got[1].NewEntries))
	}
}

func TestBatcherScannedMonotonic(t *testing.T) {
	var got []Snapshot
	b := NewBatcher(time.Millisecond, func(s Snapshot) {
		got = append(got, s)
	})

	base := time.Now()
	for i := 0; i < 10; i++ {
		b.Tick()
		b.MaybeFlush(base.Add(time.Duration(i*2) * time.Millisecond))
	}
	b.Flush()

	var prev int64 = -1
	for _, s := range got {
		if s.Scanned < prev {
			t.Fatalf("scanned decreased: %d -> %d", prev, s.Scanned)
		}
		prev = s.Scanned
	}
	if prev != 10 {
		t.Errorf("final scanned %d, want 10", prev)
	}
}
