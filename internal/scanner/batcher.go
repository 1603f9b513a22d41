package scanner

import (
	"time"

	"github.com/lumipallolabs/pathdive/internal/model"
)

const (
	// flushInterval bounds how often snapshots are emitted, regardless of
	// how fast the traversal discovers entries. Large trees would
	// otherwise emit one message per entry and swamp the consumer.
	flushInterval = 100 * time.Millisecond

	// maxPending forces a flush when a single interval accumulates an
	// unusually large batch, so the pending buffer stays bounded
	maxPending = 4096
)

// Batcher accumulates scan progress and throttles snapshot emission.
// It is owned by a single scan; none of its methods are safe for
// concurrent use.
type Batcher struct {
	emit      func(Snapshot)
	interval  time.Duration
	pending   []model.Entry
	scanned   int64
	lastFlush time.Time
}

// NewBatcher creates a batcher that calls emit with each flushed snapshot.
// The first recorded discovery flushes immediately; later flushes are
// spaced at least interval apart.
func NewBatcher(interval time.Duration, emit func(Snapshot)) *Batcher {
	return &Batcher{emit: emit, interval: interval}
}

// Record queues an over-limit entry for the next snapshot
func (b *Batcher) Record(e model.Entry) {
	b.pending = append(b.pending, e)
}

// Tick increments the cumulative scanned counter
func (b *Batcher) Tick() {
	b.scanned++
}

// Scanned returns the cumulative number of entries visited so far
func (b *Batcher) Scanned() int64 {
	return b.scanned
}

// MaybeFlush emits a snapshot if the throttle interval has elapsed since
// the last flush, or the pending batch has hit the size cap
func (b *Batcher) MaybeFlush(now time.Time) {
	if now.Sub(b.lastFlush) <= b.interval && len(b.pending) < maxPending {
		return
	}
	b.flush(now)
}

// Flush emits unconditionally, even with nothing pending. The scanner
// calls this once at scan end so the consumer always learns the final
// scanned count.
func (b *Batcher) Flush() {
	b.flush(time.Now())
}

func (b *Batcher) flush(now time.Time) {
	snap := Snapshot{Scanned: b.scanned, NewEntries: b.pending}
	b.pending = nil
	b.lastFlush = now
	b.emit(snap)
}
