package export

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lumipallolabs/pathdive/internal/model"
)

func TestRenderQuoting(t *testing.T) {
	entries := []model.Entry{
		{Path: "a/b", Length: 3},
		{Path: `a/"c"`, Length: 5},
	}

	got := Render(entries)
	want := "Path,Length\n\"a/b\",3\n\"a/\"\"c\"\"\",5\n"
	if got != want {
		t.Errorf("Render:\n got %q\nwant %q", got, want)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	entries := []model.Entry{
		{Path: "a/b", Length: 3},
		{Path: `a/"c"`, Length: 5},
		{Path: "has,comma/and\nnewline", Length: 21},
	}

	r := csv.NewReader(strings.NewReader(Render(entries)))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}

	if len(records) != len(entries)+1 {
		t.Fatalf("expected %d records, got %d", len(entries)+1, len(records))
	}
	if records[0][0] != "Path" || records[0][1] != "Length" {
		t.Errorf("bad header: %v", records[0])
	}
	for i, e := range entries {
		if records[i+1][0] != e.Path {
			t.Errorf("record %d: path %q, want %q", i, records[i+1][0], e.Path)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil); got != "Path,Length\n" {
		t.Errorf("empty render: %q", got)
	}
}

func TestWrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")
	entries := []model.Entry{{Path: "/x/y", Length: 4}}

	if err := Write(entries, dest); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Render(entries) {
		t.Errorf("file content mismatch: %q", data)
	}
}

func TestWriteCancelled(t *testing.T) {
	err := Write(nil, "")
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}

func TestWriteBadDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing-dir", "out.csv")

	err := Write(nil, dest)
	if err == nil {
		t.Fatal("expected error for missing destination directory")
	}
	if errors.Is(err, ErrCancelled) {
		t.Error("I/O failure must not look like a cancelled export")
	}
	// No partial file left behind
	if _, statErr := os.Stat(dest); statErr == nil {
		t.Error("unexpected file at destination after failed export")
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(3, "/tmp/out.csv"); got != "Exported 3 paths to /tmp/out.csv" {
		t.Errorf("Summary: %q", got)
	}
	if got := Summary(1, "a.csv"); got != "Exported 1 path to a.csv" {
		t.Errorf("Summary singular: %q", got)
	}
}
