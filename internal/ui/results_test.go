package ui

import (
	"testing"

	"github.com/lumipallolabs/pathdive/internal/model"
)

func testEntries() []model.Entry {
	return []model.Entry{
		{Path: "/a/short", Length: 8},
		{Path: "/a/very/long/path", Length: 17, IsNew: true},
		{Path: "/a/medium/one", Length: 13},
	}
}

func TestResultsPanelSortsLongestFirst(t *testing.T) {
	r := NewResultsPanel()
	r.SetSize(80, 20)
	r.SetEntries(testEntries())

	if r.Count() != 3 {
		t.Fatalf("Count = %d, want 3", r.Count())
	}
	if got := r.Selected(); got == nil || got.Path != "/a/very/long/path" {
		t.Errorf("first entry = %+v, want longest path", got)
	}
}

func TestResultsPanelNavigation(t *testing.T) {
	r := NewResultsPanel()
	r.SetSize(80, 20)
	r.SetEntries(testEntries())

	r.MoveDown()
	if got := r.Selected(); got == nil || got.Path != "/a/medium/one" {
		t.Errorf("after MoveDown: %+v", got)
	}

	r.GoToBottom()
	if got := r.Selected(); got == nil || got.Path != "/a/short" {
		t.Errorf("after GoToBottom: %+v", got)
	}

	// Moving past the end stays on the last entry
	r.MoveDown()
	if got := r.Selected(); got == nil || got.Path != "/a/short" {
		t.Errorf("MoveDown past end: %+v", got)
	}

	r.GoToTop()
	r.MoveUp()
	if got := r.Selected(); got == nil || got.Path != "/a/very/long/path" {
		t.Errorf("MoveUp past start: %+v", got)
	}
}

func TestResultsPanelSelectionClampedOnShrink(t *testing.T) {
	r := NewResultsPanel()
	r.SetSize(80, 20)
	r.SetEntries(testEntries())
	r.GoToBottom()

	r.SetEntries(testEntries()[:1])
	if got := r.Selected(); got == nil {
		t.Fatal("selection lost after entries shrank")
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Count())
	}
}

func TestResultsPanelEmpty(t *testing.T) {
	r := NewResultsPanel()
	r.SetSize(80, 20)

	if r.Selected() != nil {
		t.Error("Selected on empty panel should be nil")
	}
	r.MoveDown()
	r.PageDown()
	if r.Selected() != nil {
		t.Error("navigation on empty panel should not invent a selection")
	}
}
