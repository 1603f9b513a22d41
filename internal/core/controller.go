package core

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lumipallolabs/pathdive/internal/cache"
	"github.com/lumipallolabs/pathdive/internal/export"
	"github.com/lumipallolabs/pathdive/internal/logging"
	"github.com/lumipallolabs/pathdive/internal/model"
	"github.com/lumipallolabs/pathdive/internal/scanner"
	"github.com/lumipallolabs/pathdive/internal/stats"
)

// DefaultLimit is the path length threshold used until the user picks one.
// 260 is the classic Windows MAX_PATH, the limit people most often trip on.
const DefaultLimit = 260

// ErrNoRoot is returned when a scan is requested before a folder is chosen
var ErrNoRoot = errors.New("no folder selected")

// Controller manages the scan session without UI dependencies. It owns the
// accumulated result set: snapshots replace the scanned count and append
// entries, exactly mirroring what the scanner emitted.
type Controller struct {
	mu sync.RWMutex

	// State
	roots    []model.Drive
	root     string
	limit    int // limit for the next scan (last valid input)
	scan     ScanState
	entries  []model.Entry
	errs     []scanner.ScanError
	added    int
	resolved int
	prevScan time.Time // timestamp of the cached previous scan, zero if none

	// Scan identity: a new scan supersedes any in-flight one
	scanID int
	cancel context.CancelFunc

	// Internal services
	statsManager *stats.Manager
	resultCache  *cache.Cache
}

// NewController creates a new session controller. An explicit root or
// limit wins over the saved defaults.
func NewController(root string, limit int) *Controller {
	roots, _ := model.GetDrives()

	statsMgr := stats.NewManager()
	if err := statsMgr.Load(); err != nil {
		logging.Debug.Printf("Failed to load stats: %v", err)
	}

	c := &Controller{
		roots:        roots,
		limit:        DefaultLimit,
		statsManager: statsMgr,
		resultCache:  cache.New(cache.DefaultDir()),
	}

	if saved := statsMgr.DefaultLimit(); saved > 0 {
		c.limit = saved
	}
	if limit > 0 {
		c.limit = limit
	}

	if root != "" {
		c.root = root
	} else {
		c.root = statsMgr.DefaultRoot()
	}

	return c
}

// Roots returns the quick-pick scan roots
func (c *Controller) Roots() []model.Drive {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roots
}

// Root returns the current scan root, empty if none chosen yet
func (c *Controller) Root() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.root
}

// Limit returns the limit the next scan will use
func (c *Controller) Limit() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.limit
}

// ScanState returns the current scan state
func (c *Controller) ScanState() ScanState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scan
}

// Entries returns a copy of the over-limit entries found so far, in
// discovery order
func (c *Controller) Entries() []model.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Entry(nil), c.entries...)
}

// Errors returns a copy of the non-fatal errors recorded by the last scan
func (c *Controller) Errors() []scanner.ScanError {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]scanner.ScanError(nil), c.errs...)
}

// DiffCounts returns how many findings are new and how many were resolved
// compared with the previous scan of the same root
func (c *Controller) DiffCounts() (added, resolved int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.added, c.resolved
}

// PrevScanTime returns the timestamp of the previous scan of the current
// root, zero when there was none
func (c *Controller) PrevScanTime() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prevScan
}

// ScansCompleted returns the lifetime completed scan count
func (c *Controller) ScansCompleted() int64 {
	return c.statsManager.ScansCompleted()
}

// SetRoot sets the folder for the next scan and saves it as the default.
// Results from the previous root stay visible until the next scan starts.
func (c *Controller) SetRoot(path string) {
	if path == "" {
		// Picker dismissed: prior state stays unchanged
		return
	}

	c.mu.Lock()
	c.root = path
	c.mu.Unlock()

	c.statsManager.SetDefaultRoot(path)
}

// SetLimitInput parses the limit the user typed. Malformed or negative
// input keeps the last valid value and returns false.
func (c *Controller) SetLimitInput(input string) bool {
	limit, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || limit < 0 {
		return false
	}

	c.mu.Lock()
	c.limit = limit
	c.mu.Unlock()

	c.statsManager.SetDefaultLimit(limit)
	return true
}

// StartScan begins scanning the current root with the current limit. The
// limit is snapshotted here; edits made while the scan runs apply to the
// next scan only. Any in-flight scan is superseded: it gets cancelled and
// its remaining events are suppressed.
func (c *Controller) StartScan(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()

	if c.root == "" {
		c.mu.Unlock()
		return nil, ErrNoRoot
	}

	if c.cancel != nil {
		c.cancel()
	}

	scanCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.scanID++
	id := c.scanID
	root := c.root
	limit := c.limit

	c.scan = ScanState{Phase: PhaseScanning, StartTime: time.Now()}
	c.entries = nil
	c.errs = nil
	c.added, c.resolved = 0, 0
	c.prevScan = time.Time{}

	c.mu.Unlock()

	eventCh := make(chan Event, 100)
	go c.runScan(scanCtx, id, root, limit, eventCh)

	return eventCh, nil
}

// Cancel requests cancellation of the active scan. Idempotent; a no-op
// when nothing is running or the scan has already finished.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// Export writes the current result set as CSV to dest and returns a
// human-readable summary. An empty dest means the save dialog was
// dismissed and yields export.ErrCancelled.
func (c *Controller) Export(dest string) (string, error) {
	entries := c.Entries()
	if err := export.Write(entries, dest); err != nil {
		return "", err
	}
	return export.Summary(len(entries), dest), nil
}

// Stop cleans up resources
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	if c.statsManager != nil {
		_ = c.statsManager.Close()
	}
}

// runScan executes one scan in a goroutine
func (c *Controller) runScan(ctx context.Context, id int, root string, limit int, eventCh chan Event) {
	defer close(eventCh)

	logging.Debug.Printf("[controller] scan %d starting: root=%s limit=%d", id, root, limit)

	eventCh <- ScanStartedEvent{ScanID: id, Root: root, Limit: limit}

	w := scanner.NewWalker()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range w.Snapshots() {
			if !c.applySnapshot(id, snap) {
				// Superseded scan: keep draining so the walker never
				// blocks, but emit nothing
				continue
			}
			eventCh <- ScanProgressEvent{ScanID: id, Scanned: snap.Scanned, NewEntries: snap.NewEntries}
		}
	}()

	result := w.Scan(ctx, root, limit)
	<-done

	var previous []model.Entry
	var prevTime time.Time
	if result.Outcome == scanner.Completed {
		if loaded, err := c.resultCache.LoadLatest(root); err == nil {
			previous = loaded
			if ts, err := c.resultCache.Timestamp(root); err == nil {
				prevTime = ts
			}
		}
	}

	var added, resolved int
	var current []model.Entry

	c.mu.Lock()
	stale := id != c.scanID
	if !stale {
		if result.Outcome == scanner.Completed {
			added, resolved = cache.MarkNew(c.entries, previous)
		}
		c.scan.Phase = PhaseComplete
		c.scan.Outcome = result.Outcome
		c.errs = result.Errors
		c.added, c.resolved = added, resolved
		c.prevScan = prevTime
		current = append([]model.Entry(nil), c.entries...)
	}
	c.mu.Unlock()

	if stale {
		logging.Debug.Printf("[controller] scan %d superseded, dropping result", id)
		return
	}

	if result.Outcome == scanner.Completed {
		if err := c.resultCache.Save(root, current); err != nil {
			logging.Debug.Printf("[controller] saving scan cache failed: %v", err)
		}
		c.statsManager.AddScan()
	}

	eventCh <- ScanCompletedEvent{
		ScanID:   id,
		Outcome:  result.Outcome,
		Errors:   result.Errors,
		Added:    added,
		Resolved: resolved,
	}

	logging.Debug.Printf("[controller] scan %d %s: %d entries, %d errors",
		id, result.Outcome, len(current), len(result.Errors))
}

// applySnapshot folds a snapshot into session state. Returns false when
// the snapshot belongs to a superseded scan.
func (c *Controller) applySnapshot(id int, snap scanner.Snapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id != c.scanID {
		return false
	}

	c.scan.Scanned = snap.Scanned
	c.entries = append(c.entries, snap.NewEntries...)
	return true
}
