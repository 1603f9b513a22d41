package scanner

import (
	"context"
	"fmt"

	"github.com/lumipallolabs/pathdive/internal/model"
)

// Snapshot is a batched progress report. Scanned is cumulative across the
// whole scan and non-decreasing from one snapshot to the next; NewEntries
// holds the over-limit entries discovered since the previous snapshot.
// Snapshots are transient: the consumer owns accumulation.
type Snapshot struct {
	Scanned    int64
	NewEntries []model.Entry
}

// Outcome is the terminal result of a scan
type Outcome int

const (
	Completed Outcome = iota
	Cancelled
)

// String returns a human-readable outcome name
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ErrorKind classifies non-fatal errors recorded during a scan
type ErrorKind int

const (
	// ErrDirRead means a directory could not be listed
	ErrDirRead ErrorKind = iota
	// ErrMetadata means an entry's type could not be determined
	ErrMetadata
)

// ScanError records a non-fatal error encountered during traversal.
// These never abort the scan; they accumulate into the result.
type ScanError struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Error implements the error interface
func (e ScanError) Error() string {
	switch e.Kind {
	case ErrDirRead:
		return fmt.Sprintf("read directory %s: %v", e.Path, e.Err)
	case ErrMetadata:
		return fmt.Sprintf("read metadata for %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

// Result is the terminal result of one scan
type Result struct {
	Outcome Outcome
	Errors  []ScanError
}

// Scanner defines the interface for filesystem scanning
type Scanner interface {
	// Scan walks the tree rooted at root, classifying every entry's full
	// path against limit. It blocks until the scan finishes and collects
	// non-fatal errors in the result. Cancelling ctx stops the traversal
	// at the next directory boundary.
	Scan(ctx context.Context, root string, limit int) Result

	// Snapshots returns the channel progress snapshots are delivered on.
	// It is closed when the scan finishes; a final snapshot always
	// precedes the close so the consumer sees the true final count.
	Snapshots() <-chan Snapshot
}
