package model

import "sort"

// Entry represents a filesystem path whose length exceeds the scan limit
type Entry struct {
	Path   string
	Length int

	// Change tracking
	IsNew bool // not present in the previous scan of the same root
}

// Classify measures a path against the limit. Length is the byte length of
// the path string as encountered; a path exactly at the limit is not over.
func Classify(path string, limit int) (length int, over bool) {
	length = len(path)
	return length, length > limit
}

// SortByLength sorts entries longest path first, ties broken by path
func SortByLength(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Length != entries[j].Length {
			return entries[i].Length > entries[j].Length
		}
		return entries[i].Path < entries[j].Path
	})
}
