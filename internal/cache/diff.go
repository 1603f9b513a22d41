package cache

import "github.com/lumipallolabs/pathdive/internal/model"

// MarkNew compares the current scan's entries against the previous scan of
// the same root, setting IsNew on entries that weren't seen before. It
// returns how many findings are new and how many previous findings are
// gone (renamed, shortened or deleted since the last scan).
func MarkNew(current []model.Entry, previous []model.Entry) (added, resolved int) {
	if previous == nil {
		for i := range current {
			current[i].IsNew = true
		}
		return len(current), 0
	}

	prevSet := make(map[string]struct{}, len(previous))
	for _, e := range previous {
		prevSet[e.Path] = struct{}{}
	}

	currSet := make(map[string]struct{}, len(current))
	for i := range current {
		currSet[current[i].Path] = struct{}{}
		if _, seen := prevSet[current[i].Path]; !seen {
			current[i].IsNew = true
			added++
		} else {
			current[i].IsNew = false
		}
	}

	for _, e := range previous {
		if _, still := currSet[e.Path]; !still {
			resolved++
		}
	}

	return added, resolved
}
