package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/pathdive/internal/model"
)

// ResultsPanel displays the over-limit paths as a scrollable list,
// longest first
type ResultsPanel struct {
	entries  []model.Entry
	selected int
	offset   int
	width    int
	height   int
}

// NewResultsPanel creates a new results panel
func NewResultsPanel() ResultsPanel {
	return ResultsPanel{}
}

// SetEntries replaces the displayed entries. Selection is clamped so it
// stays valid as entries stream in during a scan.
func (r *ResultsPanel) SetEntries(entries []model.Entry) {
	sorted := append([]model.Entry(nil), entries...)
	model.SortByLength(sorted)
	r.entries = sorted
	if r.selected >= len(sorted) {
		r.selected = len(sorted) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}
	r.clampOffset()
}

// Count returns the number of displayed entries
func (r ResultsPanel) Count() int {
	return len(r.entries)
}

// Selected returns the currently highlighted entry, nil when the list
// is empty
func (r ResultsPanel) Selected() *model.Entry {
	if r.selected < 0 || r.selected >= len(r.entries) {
		return nil
	}
	entry := r.entries[r.selected]
	return &entry
}

// SetSize sets the panel dimensions
func (r *ResultsPanel) SetSize(w, h int) {
	r.width = w
	r.height = h
	r.clampOffset()
}

// MoveUp moves selection up
func (r *ResultsPanel) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
	r.clampOffset()
}

// MoveDown moves selection down
func (r *ResultsPanel) MoveDown() {
	if r.selected < len(r.entries)-1 {
		r.selected++
	}
	r.clampOffset()
}

// PageUp moves selection up one page
func (r *ResultsPanel) PageUp() {
	r.selected -= r.visibleRows()
	if r.selected < 0 {
		r.selected = 0
	}
	r.clampOffset()
}

// PageDown moves selection down one page
func (r *ResultsPanel) PageDown() {
	r.selected += r.visibleRows()
	if r.selected > len(r.entries)-1 {
		r.selected = len(r.entries) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}
	r.clampOffset()
}

// GoToTop jumps to the first entry
func (r *ResultsPanel) GoToTop() {
	r.selected = 0
	r.clampOffset()
}

// GoToBottom jumps to the last entry
func (r *ResultsPanel) GoToBottom() {
	if len(r.entries) > 0 {
		r.selected = len(r.entries) - 1
	}
	r.clampOffset()
}

// visibleRows is the number of entry rows that fit inside the border
func (r ResultsPanel) visibleRows() int {
	rows := r.height - 2 // border
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampOffset keeps the selection inside the viewport
func (r *ResultsPanel) clampOffset() {
	rows := r.visibleRows()
	if r.selected < r.offset {
		r.offset = r.selected
	}
	if r.selected >= r.offset+rows {
		r.offset = r.selected - rows + 1
	}
	if r.offset < 0 {
		r.offset = 0
	}
}

// View renders the panel
func (r ResultsPanel) View() string {
	innerWidth := r.width - 4 // border + padding
	if innerWidth < 10 {
		innerWidth = 10
	}
	rows := r.visibleRows()

	var lines []string
	if len(r.entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(ColorMuted).Render("No paths over the limit")
		lines = append(lines, empty)
	}

	end := r.offset + rows
	if end > len(r.entries) {
		end = len(r.entries)
	}

	for i := r.offset; i < end; i++ {
		entry := r.entries[i]

		badge := "  "
		if entry.IsNew {
			badge = "+ "
		}

		pathWidth := innerWidth - 5 - 3 // length column + badge and gaps
		path := entry.Path
		if len(path) > pathWidth && pathWidth > 1 {
			// Keep the tail, it is the part that identifies the file
			path = "…" + path[len(path)-pathWidth+1:]
		}

		var line string
		if i == r.selected {
			line = ResultItemSelected.Width(innerWidth).Render(fmt.Sprintf("%5d %s%s", entry.Length, badge, path))
		} else {
			length := ResultLength.Render(fmt.Sprintf("%5d", entry.Length))
			marker := badge
			if entry.IsNew {
				marker = NewBadge.Render(badge)
			}
			line = length + " " + marker + ResultItemStyle.Render(path)
		}
		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")
	return ResultsPanelStyle.
		Width(r.width - 2).
		Height(rows).
		Render(content)
}
