package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gabriel-vasile/mimetype"
	"github.com/lumipallolabs/pathdive/internal/model"
)

// DetailsPanel renders metadata for the selected finding
type DetailsPanel struct {
	width  int
	height int
}

// NewDetailsPanel creates a details panel
func NewDetailsPanel() DetailsPanel {
	return DetailsPanel{}
}

// SetSize sets the panel dimensions
func (d *DetailsPanel) SetSize(w, h int) {
	d.width = w
	d.height = h
}

// View renders metadata for the given entry
func (d DetailsPanel) View(entry *model.Entry, limit int) string {
	if entry == nil {
		return ""
	}

	innerWidth := d.width - 2
	innerHeight := d.height - 2
	if innerWidth < 10 || innerHeight < 1 {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	pathStyle := lipgloss.NewStyle().Foreground(ColorCyan)
	overStyle := lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)

	var contentLines []string

	over := entry.Length - limit
	contentLines = append(contentLines,
		labelStyle.Render("Length: ")+valueStyle.Render(fmt.Sprintf("%d", entry.Length))+
			overStyle.Render(fmt.Sprintf("  (+%d over)", over)))

	info, statErr := os.Stat(entry.Path)
	if statErr == nil && !info.IsDir() {
		if fileType := getFileType(entry.Path); fileType != "" {
			contentLines = append(contentLines, labelStyle.Render("Type: ")+valueStyle.Render(fileType))
		}
	}

	if statErr == nil {
		if info.IsDir() {
			contentLines = append(contentLines, labelStyle.Render("Type: ")+valueStyle.Render("Directory"))
		} else {
			contentLines = append(contentLines, labelStyle.Render("Size: ")+valueStyle.Render(FormatSize(info.Size())))
		}
		if timeStr := FormatTime(getCreationTime(info)); timeStr != "" {
			contentLines = append(contentLines, labelStyle.Render("Created: ")+valueStyle.Render(timeStr))
		}
		contentLines = append(contentLines, labelStyle.Render("Modified: ")+valueStyle.Render(FormatTime(info.ModTime())))
		contentLines = append(contentLines, labelStyle.Render("Permissions: ")+valueStyle.Render(info.Mode().String()))
	} else {
		contentLines = append(contentLines, labelStyle.Render("(file no longer accessible)"))
	}

	contentLines = append(contentLines, "")
	contentLines = append(contentLines, labelStyle.Render("Path:"))
	for _, line := range wrapPath(entry.Path, innerWidth-2) {
		contentLines = append(contentLines, pathStyle.Render(line))
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#2D6A6A"))

	var result strings.Builder
	result.WriteString(borderStyle.Render("╭" + strings.Repeat("─", innerWidth) + "╮"))
	result.WriteString("\n")

	for i := 0; i < innerHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = " " + contentLines[i]
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth < innerWidth {
			line += strings.Repeat(" ", innerWidth-lineWidth)
		}
		result.WriteString(borderStyle.Render("│") + line + borderStyle.Render("│"))
		result.WriteString("\n")
	}

	result.WriteString(borderStyle.Render("╰" + strings.Repeat("─", innerWidth) + "╯"))
	return result.String()
}

// wrapPath splits a long path into display lines
func wrapPath(path string, width int) []string {
	if width < 4 {
		return []string{path}
	}
	var lines []string
	for len(path) > width {
		lines = append(lines, path[:width])
		path = path[width:]
	}
	lines = append(lines, path)
	return lines
}

// getFileType detects file type using magic numbers
func getFileType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	ext := mtype.Extension()
	if ext != "" {
		return strings.ToUpper(strings.TrimPrefix(ext, "."))
	}
	return ""
}
