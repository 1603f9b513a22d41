package core

import (
	"github.com/lumipallolabs/pathdive/internal/model"
	"github.com/lumipallolabs/pathdive/internal/scanner"
)

// Event represents a state change from the controller. Every scan event
// carries the ID of the scan it belongs to; consumers drop events from a
// superseded scan so stale data never overwrites newer session state.
type Event interface {
	isEvent()
}

// ScanStartedEvent is emitted when a scan begins
type ScanStartedEvent struct {
	ScanID int
	Root   string
	Limit  int
}

func (ScanStartedEvent) isEvent() {}

// ScanProgressEvent carries one progress snapshot
type ScanProgressEvent struct {
	ScanID     int
	Scanned    int64
	NewEntries []model.Entry
}

func (ScanProgressEvent) isEvent() {}

// ScanCompletedEvent is emitted when a scan finishes, whether it ran to
// exhaustion or was cancelled
type ScanCompletedEvent struct {
	ScanID   int
	Outcome  scanner.Outcome
	Errors   []scanner.ScanError
	Added    int // findings absent from the previous scan of this root
	Resolved int // previous findings no longer present
}

func (ScanCompletedEvent) isEvent() {}
