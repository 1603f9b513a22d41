package model

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		path  string
		limit int
		over  bool
	}{
		{"/a/b", 10, false},
		{"/a/b", 4, false}, // exactly at the limit is not over
		{"/a/b", 3, true},
		{"/a/b", 0, true},
		{"", 0, false},
	}

	for _, tt := range tests {
		length, over := Classify(tt.path, tt.limit)
		if length != len(tt.path) {
			t.Errorf("Classify(%q, %d): length %d, want %d", tt.path, tt.limit, length, len(tt.path))
		}
		if over != tt.over {
			t.Errorf("Classify(%q, %d): over %v, want %v", tt.path, tt.limit, over, tt.over)
		}
	}
}

func TestSortByLength(t *testing.T) {
	entries := []Entry{
		{Path: "/short", Length: 6},
		{Path: "/much/longer/path", Length: 17},
		{Path: "/medium/one", Length: 11},
	}

	SortByLength(entries)

	if entries[0].Path != "/much/longer/path" {
		t.Errorf("expected longest first, got %s", entries[0].Path)
	}
	if entries[2].Path != "/short" {
		t.Errorf("expected shortest last, got %s", entries[2].Path)
	}
}

func TestSortByLengthTies(t *testing.T) {
	entries := []Entry{
		{Path: "/bb", Length: 3},
		{Path: "/aa", Length: 3},
	}

	SortByLength(entries)

	if entries[0].Path != "/aa" {
		t.Errorf("expected ties ordered by path, got %s first", entries[0].Path)
	}
}
