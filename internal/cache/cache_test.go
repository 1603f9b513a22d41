package cache

import (
	"path/filepath"
	"testing"

	"github.com/lumipallolabs/pathdive/internal/model"
)

func TestSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	c := New(tmp)

	entries := []model.Entry{
		{Path: "/data/very/long/path", Length: 20},
		{Path: "/data/another", Length: 13},
	}

	if err := c.Save("/data", entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	files, _ := filepath.Glob(filepath.Join(tmp, "*.gob.gz"))
	if len(files) == 0 {
		t.Fatal("no cache file created")
	}

	loaded, err := c.LoadLatest("/data")
	if err != nil {
		t.Fatalf("LoadLatest failed: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded))
	}
	if loaded[0].Path != entries[0].Path || loaded[0].Length != entries[0].Length {
		t.Errorf("entry mismatch: %+v", loaded[0])
	}
}

func TestLoadLatestNoCache(t *testing.T) {
	tmp := t.TempDir()
	c := New(tmp)

	_, err := c.LoadLatest("/nowhere")
	if err == nil {
		t.Error("expected error for missing cache")
	}
}

func TestRootsDoNotCollide(t *testing.T) {
	tmp := t.TempDir()
	c := New(tmp)

	if err := c.Save("/alpha", []model.Entry{{Path: "/alpha/x", Length: 8}}); err != nil {
		t.Fatal(err)
	}
	if err := c.Save("/beta", []model.Entry{{Path: "/beta/y", Length: 7}}); err != nil {
		t.Fatal(err)
	}

	loaded, err := c.LoadLatest("/alpha")
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].Path != "/alpha/x" {
		t.Errorf("wrong entries for /alpha: %+v", loaded)
	}
}

func TestTimestamp(t *testing.T) {
	tmp := t.TempDir()
	c := New(tmp)

	if err := c.Save("/data", nil); err != nil {
		t.Fatal(err)
	}

	ts, err := c.Timestamp("/data")
	if err != nil {
		t.Fatalf("Timestamp failed: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}
