package core

import (
	"time"

	"github.com/lumipallolabs/pathdive/internal/scanner"
)

// ScanPhase represents the current phase of the session
type ScanPhase int

const (
	PhaseIdle ScanPhase = iota
	PhaseScanning
	PhaseComplete
)

// String returns a human-readable phase name
func (p ScanPhase) String() string {
	switch p {
	case PhaseScanning:
		return "Scanning"
	case PhaseComplete:
		return "Complete"
	default:
		return ""
	}
}

// ScanState holds the observable state of the active or most recent scan
type ScanState struct {
	Phase     ScanPhase
	StartTime time.Time
	Scanned   int64
	Outcome   scanner.Outcome // valid when Phase is PhaseComplete
}

// IsScanning returns true while a scan is in progress
func (s ScanState) IsScanning() bool {
	return s.Phase == PhaseScanning
}

// Elapsed returns time since the scan started
func (s ScanState) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	return time.Since(s.StartTime).Truncate(time.Second)
}
