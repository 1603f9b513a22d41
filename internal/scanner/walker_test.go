package scanner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/lumipallolabs/pathdive/internal/model"
)

// collectScan runs a scan while draining the snapshot channel, returning
// the result, all entries across snapshots, and the final scanned count.
func collectScan(t *testing.T, ctx context.Context, root string, limit int) (Result, []model.Entry, int64) {
	t.Helper()

	w := NewWalker()

	var entries []model.Entry
	var scanned int64
	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range w.Snapshots() {
			if snap.Scanned < scanned {
				t.Errorf("scanned count decreased: %d -> %d", scanned, snap.Scanned)
			}
			scanned = snap.Scanned
			entries = append(entries, snap.NewEntries...)
		}
	}()

	result := w.Scan(ctx, root, limit)
	<-done
	return result, entries, scanned
}

func TestScanFindsOverLimitPaths(t *testing.T) {
	tmp := t.TempDir()

	short := filepath.Join(tmp, "a.txt")
	long := filepath.Join(tmp, strings.Repeat("b", 80)+".txt")
	medium := filepath.Join(tmp, strings.Repeat("c", 40)+".txt")
	for _, p := range []string{short, long, medium} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Only the 80-char name exceeds this
	limit := len(tmp) + 50

	result, entries, scanned := collectScan(t, context.Background(), tmp, limit)

	if result.Outcome != Completed {
		t.Errorf("expected Completed, got %s", result.Outcome)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
	if scanned != 3 {
		t.Errorf("expected 3 entries scanned, got %d", scanned)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 over-limit entry, got %d", len(entries))
	}
	if entries[0].Path != long {
		t.Errorf("expected %s, got %s", long, entries[0].Path)
	}
	if entries[0].Length != len(long) {
		t.Errorf("expected length %d, got %d", len(long), entries[0].Length)
	}
}

func TestScanExactLimitNotOver(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "edge.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	// A path exactly at the limit is not over
	result, entries, _ := collectScan(t, context.Background(), tmp, len(file))

	if result.Outcome != Completed {
		t.Errorf("expected Completed, got %s", result.Outcome)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries at exact limit, got %d", len(entries))
	}
}

func TestScanDescendsOverLimitDir(t *testing.T) {
	tmp := t.TempDir()

	dir := filepath.Join(tmp, strings.Repeat("d", 60))
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	child := filepath.Join(dir, "leaf.txt")
	if err := os.WriteFile(child, nil, 0644); err != nil {
		t.Fatal(err)
	}

	// The directory itself is over the limit; it must still be descended
	limit := len(tmp) + 10
	result, entries, scanned := collectScan(t, context.Background(), tmp, limit)

	if result.Outcome != Completed {
		t.Errorf("expected Completed, got %s", result.Outcome)
	}
	if scanned != 2 {
		t.Errorf("expected child of over-limit dir to be scanned, scanned=%d", scanned)
	}

	found := map[string]bool{}
	for _, e := range entries {
		found[e.Path] = true
	}
	if !found[dir] {
		t.Error("over-limit directory not reported")
	}
	if !found[child] {
		t.Error("child of over-limit directory not reported")
	}
}

func TestScanMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	result, entries, scanned := collectScan(t, context.Background(), root, 100)

	if result.Outcome != Completed {
		t.Errorf("expected Completed, got %s", result.Outcome)
	}
	if scanned != 0 {
		t.Errorf("expected 0 scanned, got %d", scanned)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].Kind != ErrDirRead {
		t.Errorf("expected ErrDirRead, got %v", result.Errors[0].Kind)
	}
	if result.Errors[0].Path != root {
		t.Errorf("expected error for root, got %s", result.Errors[0].Path)
	}
}

func TestScanEmptyRoot(t *testing.T) {
	tmp := t.TempDir()

	result, entries, scanned := collectScan(t, context.Background(), tmp, 10000)

	if result.Outcome != Completed {
		t.Errorf("expected Completed, got %s", result.Outcome)
	}
	if scanned != 0 || len(entries) != 0 || len(result.Errors) != 0 {
		t.Errorf("empty root: scanned=%d entries=%d errors=%d", scanned, len(entries), len(result.Errors))
	}
}

func TestScanUnreadableDirDoesNotAbort(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits don't apply on Windows")
	}
	if os.Getuid() == 0 {
		t.Skip("running as root; permissions are not enforced")
	}

	tmp := t.TempDir()
	locked := filepath.Join(tmp, "locked")
	if err := os.Mkdir(locked, 0); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(locked, 0755)

	sibling := filepath.Join(tmp, "sibling.txt")
	if err := os.WriteFile(sibling, nil, 0644); err != nil {
		t.Fatal(err)
	}

	result, _, scanned := collectScan(t, context.Background(), tmp, 10000)

	if result.Outcome != Completed {
		t.Errorf("expected Completed, got %s", result.Outcome)
	}
	// Both direct children were still visited
	if scanned != 2 {
		t.Errorf("expected 2 scanned, got %d", scanned)
	}
	if len(result.Errors) != 1 || result.Errors[0].Kind != ErrDirRead {
		t.Errorf("expected 1 ErrDirRead, got %v", result.Errors)
	}
}

func TestScanSymlinkNotFollowed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privileges on Windows")
	}

	tmp := t.TempDir()
	sub := filepath.Join(tmp, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	// Link back to the root; following it would loop forever
	if err := os.Symlink(tmp, filepath.Join(sub, "loop")); err != nil {
		t.Fatal(err)
	}

	result, _, scanned := collectScan(t, context.Background(), tmp, 10000)

	if result.Outcome != Completed {
		t.Errorf("expected Completed, got %s", result.Outcome)
	}
	if scanned != 2 {
		t.Errorf("expected 2 scanned (sub, loop), got %d", scanned)
	}
}

func TestScanCancelledBeforeStart(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "f.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, _, scanned := collectScan(t, ctx, tmp, 0)

	if result.Outcome != Cancelled {
		t.Errorf("expected Cancelled, got %s", result.Outcome)
	}
	if scanned != 0 {
		t.Errorf("expected 0 scanned, got %d", scanned)
	}
}

// cancelAfterCtx reports cancellation once Err has been sampled a fixed
// number of times, making the between-directories cancellation granularity
// observable in a deterministic way.
type cancelAfterCtx struct {
	context.Context
	calls int
	after int
}

func (c *cancelAfterCtx) Err() error {
	c.calls++
	if c.calls > c.after {
		return context.Canceled
	}
	return nil
}

func TestScanCancelledBetweenDirectories(t *testing.T) {
	tmp := t.TempDir()
	for _, d := range []string{"d1", "d2", "d3"} {
		dir := filepath.Join(tmp, d)
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatal(err)
		}
		for _, f := range []string{"a", "b"} {
			if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
				t.Fatal(err)
			}
		}
	}

	// Cancellation observed before the third directory pop: the root's 3
	// entries plus one subdirectory's 2 entries are visited, nothing more.
	ctx := &cancelAfterCtx{Context: context.Background(), after: 2}
	result, _, scanned := collectScan(t, ctx, tmp, 10000)

	if result.Outcome != Cancelled {
		t.Errorf("expected Cancelled, got %s", result.Outcome)
	}
	if scanned != 5 {
		t.Errorf("expected 5 scanned before cancellation, got %d", scanned)
	}
}
