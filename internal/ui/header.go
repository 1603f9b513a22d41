package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/pathdive/internal/model"
)

const headerProgressBarWidth = 20 // Width of disk usage progress bar

// Header displays scan target info and stats (2 lines)
type Header struct {
	roots        []model.Drive
	root         string
	limit        int
	width        int
	scanning     bool
	scanProgress string
	findings     int
	added        int
	resolved     int
	version      string
}

// NewHeader creates a new header component
func NewHeader(roots []model.Drive, version string) Header {
	return Header{
		roots:   roots,
		version: version,
	}
}

// SetTarget updates the folder and limit shown
func (h *Header) SetTarget(root string, limit int) {
	h.root = root
	h.limit = limit
}

// SetScanning sets the scanning state
func (h *Header) SetScanning(scanning bool, progress string) {
	h.scanning = scanning
	h.scanProgress = progress
}

// SetFindings sets the finding counters
func (h *Header) SetFindings(total, added, resolved int) {
	h.findings = total
	h.added = added
	h.resolved = resolved
}

// SetWidth sets the header width
func (h *Header) SetWidth(w int) {
	h.width = w
}

// rootDrive finds the drive the current folder lives on
func (h Header) rootDrive() *model.Drive {
	var best *model.Drive
	for i := range h.roots {
		d := &h.roots[i]
		if strings.HasPrefix(h.root, d.Path) {
			if best == nil || len(d.Path) > len(best.Path) {
				best = d
			}
		}
	}
	return best
}

// View renders the header (2 lines)
// Line 1: PathDive 0.1.0                    Free: X / Y [bar]
// Line 2: Folder: /path [f change]          Limit: 260 | 41 findings (3 new)
func (h Header) View() string {
	nameStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	versionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9CA3AF"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9CA3AF"))
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9CA3AF"))
	barFilledStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary)
	barEmptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))

	// === LINE 1: App name (left) | free space of the folder's drive (right) ===
	appName := nameStyle.Render("PathDive") + versionStyle.Render(" "+h.version)

	var freeStats string
	if drive := h.rootDrive(); drive != nil && drive.TotalBytes > 0 {
		freeLabel := labelStyle.Render("Free: ")
		freeValue := StatsStyle.Render(fmt.Sprintf("%s / %s", FormatSize(drive.FreeBytes), FormatSize(drive.TotalBytes)))
		appWidth := lipgloss.Width(appName)
		fullStatsWidth := 6 + 20 + 4 + headerProgressBarWidth

		if h.width < appWidth+fullStatsWidth+4 {
			freeStats = freeLabel + freeValue
		} else {
			filled := int(drive.UsedPercent() / 100 * float64(headerProgressBarWidth))
			if filled > headerProgressBarWidth {
				filled = headerProgressBarWidth
			}
			bar := barFilledStyle.Render(strings.Repeat("▓", filled)) + barEmptyStyle.Render(strings.Repeat("░", headerProgressBarWidth-filled))
			freeStats = freeLabel + freeValue + StatsStyle.Render("  ") + bar
		}
	}

	gap1 := h.width - lipgloss.Width(appName) - lipgloss.Width(freeStats)
	if gap1 < 2 {
		gap1 = 2
	}
	line1 := appName + strings.Repeat(" ", gap1) + freeStats

	// === LINE 2: folder (left) | limit and findings (right) ===
	var rightParts []string
	rightParts = append(rightParts, labelStyle.Render("Limit: ")+StatsStyle.Render(fmt.Sprintf("%d", h.limit)))
	if h.scanning {
		rightParts = append(rightParts, StatsStyle.Render(h.scanProgress))
	} else if h.findings > 0 || h.added > 0 || h.resolved > 0 {
		findings := fmt.Sprintf("%d findings", h.findings)
		if h.added > 0 {
			findings += NewBadge.Render(fmt.Sprintf(" (%d new)", h.added))
		}
		if h.resolved > 0 {
			findings += dimStyle.Render(fmt.Sprintf(" (%d resolved)", h.resolved))
		}
		rightParts = append(rightParts, StatsStyle.Render(findings))
	}
	rightLine := strings.Join(rightParts, dimStyle.Render(" | "))

	var folderLine string
	if h.root != "" {
		folderLabel := labelStyle.Render("Folder: ")
		folderStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
		folderLine = folderLabel + folderStyle.Render(h.root)

		hint := dimStyle.Render("  ") + KeyHint.Render("f") + dimStyle.Render(" change")
		availableForHint := h.width - lipgloss.Width(folderLine) - lipgloss.Width(rightLine) - 4
		if availableForHint >= lipgloss.Width(hint) {
			folderLine = folderLine + hint
		}
	} else {
		folderLine = labelStyle.Render("Folder: ") + dimStyle.Render("none selected")
	}

	gap2 := h.width - lipgloss.Width(folderLine) - lipgloss.Width(rightLine)
	if gap2 < 2 {
		gap2 = 2
	}
	line2 := folderLine + strings.Repeat(" ", gap2) + rightLine

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2)
}
