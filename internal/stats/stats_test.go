package stats

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return &Manager{
		path:         filepath.Join(t.TempDir(), "stats.json"),
		saveDuration: time.Hour, // tests save explicitly via Close
	}
}

func TestLoadMissingFile(t *testing.T) {
	m := newTestManager(t)

	if err := m.Load(); err != nil {
		t.Fatalf("Load of missing file should start fresh: %v", err)
	}
	if m.DefaultRoot() != "" || m.DefaultLimit() != 0 {
		t.Error("expected zero stats")
	}
}

func TestSaveAndReload(t *testing.T) {
	m := newTestManager(t)

	m.SetDefaultRoot("/projects")
	m.SetDefaultLimit(260)
	m.AddScan()
	m.AddScan()
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reloaded := &Manager{path: m.path, saveDuration: time.Hour}
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if reloaded.DefaultRoot() != "/projects" {
		t.Errorf("DefaultRoot = %q", reloaded.DefaultRoot())
	}
	if reloaded.DefaultLimit() != 260 {
		t.Errorf("DefaultLimit = %d", reloaded.DefaultLimit())
	}
	if reloaded.ScansCompleted() != 2 {
		t.Errorf("ScansCompleted = %d", reloaded.ScansCompleted())
	}
}
