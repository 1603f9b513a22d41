package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/lumipallolabs/pathdive/internal/logging"
	"github.com/lumipallolabs/pathdive/internal/model"
)

// Walker implements sequential depth-first scanning driven by an explicit
// work stack. Each walker runs exactly one scan.
type Walker struct {
	snapshotCh chan Snapshot
}

// NewWalker creates a new stack-based filesystem walker
func NewWalker() *Walker {
	return &Walker{
		snapshotCh: make(chan Snapshot, 100),
	}
}

// Snapshots returns the snapshot channel
func (w *Walker) Snapshots() <-chan Snapshot {
	return w.snapshotCh
}

// Scan walks the tree rooted at root, reporting every entry whose full
// path is longer than limit. The consumer must drain Snapshots while Scan
// runs; the channel is closed when Scan returns.
func (w *Walker) Scan(ctx context.Context, root string, limit int) Result {
	defer close(w.snapshotCh)

	batch := NewBatcher(flushInterval, func(s Snapshot) {
		w.snapshotCh <- s
	})

	var errs []ScanError

	absRoot, err := filepath.Abs(root)
	if err != nil {
		errs = append(errs, ScanError{Kind: ErrDirRead, Path: root, Err: err})
		batch.Flush()
		return Result{Outcome: Completed, Errors: errs}
	}

	// Explicit LIFO stack instead of recursive descent: memory use stays
	// predictable and cancellation is sampled between directory pops
	// rather than between call frames.
	stack := []string{absRoot}

	cancelled := false
	for len(stack) > 0 {
		if ctx.Err() != nil {
			// Stop immediately; the remaining stack is not drained and no
			// further filesystem calls are issued.
			cancelled = true
			break
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			// A single unreadable directory must not abort the scan
			errs = append(errs, ScanError{Kind: ErrDirRead, Path: dir, Err: err})
			continue
		}

		for _, ent := range entries {
			full := filepath.Join(dir, ent.Name())

			if length, over := model.Classify(full, limit); over {
				batch.Record(model.Entry{Path: full, Length: length})
			}

			isDir, err := entryIsDir(ent)
			if err != nil {
				// Type unknown: treat the entry as a leaf and keep going
				errs = append(errs, ScanError{Kind: ErrMetadata, Path: full, Err: err})
			} else if isDir {
				// Over-limit directories are still descended; the limit
				// measures the directory's own path, not a barrier to
				// finding its children.
				stack = append(stack, full)
			}

			batch.Tick()
			batch.MaybeFlush(time.Now())
		}
	}

	// Final flush always happens, even after cancellation, so the
	// consumer's state ends up consistent with what was actually visited.
	batch.Flush()

	outcome := Completed
	if cancelled {
		outcome = Cancelled
	}

	logging.Scanner.Printf("scan of %s %s: %d entries visited, %d errors",
		absRoot, outcome, batch.Scanned(), len(errs))

	return Result{Outcome: outcome, Errors: errs}
}

// entryIsDir resolves whether a directory entry is itself a directory.
// Symlinks are never followed, which also rules out symlink cycles. Some
// filesystems return unknown type bits from the listing; those fall back
// to Info, which can fail.
func entryIsDir(ent fs.DirEntry) (bool, error) {
	switch t := ent.Type(); {
	case t&fs.ModeSymlink != 0:
		return false, nil
	case t.IsDir():
		return true, nil
	case t.IsRegular():
		return false, nil
	}

	info, err := ent.Info()
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Ensure Walker implements Scanner
var _ Scanner = (*Walker)(nil)
