package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptKind identifies what the text prompt is asking for
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptFolder
	PromptLimit
	PromptExport
)

// Prompt is a single-line text input overlay
type Prompt struct {
	input   textinput.Model
	kind    PromptKind
	title   string
	errText string
	width   int
	height  int
}

// NewPrompt creates the prompt component
func NewPrompt() Prompt {
	input := textinput.New()
	input.CharLimit = 4096
	input.Width = 60
	return Prompt{input: input}
}

// Show opens the prompt for the given kind with an initial value
func (p *Prompt) Show(kind PromptKind, title, placeholder, initial string) {
	p.kind = kind
	p.title = title
	p.errText = ""
	p.input.Placeholder = placeholder
	p.input.SetValue(initial)
	p.input.CursorEnd()
	p.input.Focus()
}

// Hide closes the prompt
func (p *Prompt) Hide() {
	p.kind = PromptNone
	p.input.Blur()
}

// IsVisible returns whether the prompt is open
func (p Prompt) IsVisible() bool {
	return p.kind != PromptNone
}

// Kind returns what the prompt is asking for
func (p Prompt) Kind() PromptKind {
	return p.kind
}

// Value returns the typed text
func (p Prompt) Value() string {
	return strings.TrimSpace(p.input.Value())
}

// SetError shows an inline validation message and keeps the prompt open
func (p *Prompt) SetError(msg string) {
	p.errText = msg
}

// SetSize sets the dimensions for centering
func (p *Prompt) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// Update forwards input events to the text field
func (p *Prompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the prompt overlay
func (p Prompt) View() string {
	if p.kind == PromptNone {
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

	hintStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	var content strings.Builder
	content.WriteString(titleStyle.Render(p.title))
	content.WriteString("\n")
	content.WriteString(p.input.View())
	if p.errText != "" {
		content.WriteString("\n")
		content.WriteString(lipgloss.NewStyle().Foreground(ColorDanger).Render(p.errText))
	}
	content.WriteString("\n")
	content.WriteString(hintStyle.Render("Enter confirm  Esc cancel"))

	box := boxStyle.Render(content.String())
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, box)
}
