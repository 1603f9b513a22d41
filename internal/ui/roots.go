package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/pathdive/internal/model"
)

// RootSelector displays the quick-pick scan roots for selection
type RootSelector struct {
	roots    []model.Drive
	selected int
	visible  bool
	width    int
	height   int
}

// NewRootSelector creates a new root selector component
func NewRootSelector(roots []model.Drive) RootSelector {
	return RootSelector{
		roots: roots,
	}
}

// Selected returns the index of the currently highlighted root
func (s RootSelector) Selected() int {
	return s.selected
}

// SelectedRoot returns the currently highlighted root
func (s RootSelector) SelectedRoot() *model.Drive {
	if s.selected >= 0 && s.selected < len(s.roots) {
		return &s.roots[s.selected]
	}
	return nil
}

// SetVisible sets visibility of the selector
func (s *RootSelector) SetVisible(visible bool) {
	s.visible = visible
}

// IsVisible returns whether the selector is visible
func (s RootSelector) IsVisible() bool {
	return s.visible
}

// SetSize sets the dimensions for centering
func (s *RootSelector) SetSize(w, h int) {
	s.width = w
	s.height = h
}

// MoveUp moves selection up
func (s *RootSelector) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// MoveDown moves selection down
func (s *RootSelector) MoveDown() {
	if s.selected < len(s.roots)-1 {
		s.selected++
	}
}

// View renders the root selector overlay
func (s RootSelector) View() string {
	if !s.visible || len(s.roots) == 0 {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Background(ColorBackground)

	titleStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)

	normalStyle := lipgloss.NewStyle().
		Foreground(ColorText).
		PaddingLeft(1).
		PaddingRight(1)

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(ColorPrimary).
		Bold(true).
		PaddingLeft(1).
		PaddingRight(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	var content strings.Builder

	content.WriteString(titleStyle.Render("Scan Where?"))
	content.WriteString("\n")

	for i, root := range s.roots {
		line := root.Label
		if line == "" {
			line = root.Path
		}
		if root.TotalBytes > 0 {
			line = fmt.Sprintf("%s  (%s free / %s)",
				line, FormatSize(root.FreeBytes), FormatSize(root.TotalBytes))
		}

		if i == s.selected {
			content.WriteString(selectedStyle.Render(line))
		} else {
			content.WriteString(normalStyle.Render(line))
		}
		content.WriteString("\n")
	}

	content.WriteString(hintStyle.Render("↑/↓ select  Enter scan  Esc cancel"))

	box := boxStyle.Render(strings.TrimSuffix(content.String(), "\n"))

	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, box)
}
