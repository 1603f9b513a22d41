package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/pathdive/internal/core"
	"github.com/lumipallolabs/pathdive/internal/logging"
	"github.com/lumipallolabs/pathdive/internal/scanner"
)

// Message types for Bubble Tea
type (
	scanStartMsg   struct{}
	spinnerTickMsg struct{}
)

// Spinner frames - braille dots spinner
var spinnerFrames = []string{
	"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏",
}

const spinnerTickInterval = 80 * time.Millisecond

// App is the main TUI application model
type App struct {
	// Core controller (business logic)
	ctrl *core.Controller

	// UI Components
	header       Header
	results      ResultsPanel
	details      DetailsPanel
	help         HelpOverlay
	rootSelector RootSelector
	prompt       Prompt
	keys         KeyMap
	version      string

	// UI state (TUI-specific)
	status      string
	statusIsErr bool

	// Event channel (for continuing to listen after each event)
	scanEventCh <-chan core.Event

	// Dimensions
	width        int
	height       int
	detailsWidth int
}

// NewApp creates a new application instance
func NewApp(version, scanPath string, limit int) App {
	ctrl := core.NewController(scanPath, limit)
	roots := ctrl.Roots()

	app := App{
		ctrl:         ctrl,
		header:       NewHeader(roots, version),
		results:      NewResultsPanel(),
		details:      NewDetailsPanel(),
		help:         NewHelpOverlay(version),
		rootSelector: NewRootSelector(roots),
		prompt:       NewPrompt(),
		keys:         DefaultKeyMap(),
		version:      version,
	}

	app.header.SetTarget(ctrl.Root(), ctrl.Limit())

	if ctrl.Root() == "" {
		// Nothing to scan yet, ask the user where to look
		if len(roots) > 0 {
			app.rootSelector.SetVisible(true)
		} else {
			app.prompt.Show(PromptFolder, "Choose Folder", "/path/to/scan", "")
		}
	}

	return app
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	if a.ctrl.Root() != "" {
		return func() tea.Msg {
			return scanStartMsg{}
		}
	}
	return nil
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case scanStartMsg:
		return a.startScan()

	case scanEventMsg:
		return a.handleScanEvent(msg.event)

	case spinnerTickMsg:
		if a.ctrl.ScanState().IsScanning() {
			return a, tea.Tick(spinnerTickInterval, func(t time.Time) tea.Msg {
				return spinnerTickMsg{}
			})
		}
		return a, nil
	}

	return a, nil
}

// scanEventMsg wraps any scan event for continued listening
type scanEventMsg struct {
	event core.Event
}

// listenForScanEvents creates a command that listens for scan events
func (a App) listenForScanEvents() tea.Cmd {
	if a.scanEventCh == nil {
		return nil
	}
	eventCh := a.scanEventCh
	return func() tea.Msg {
		event, ok := <-eventCh
		if !ok {
			return nil // Channel closed
		}
		return scanEventMsg{event: event}
	}
}

// startScan begins the scanning process
func (a App) startScan() (tea.Model, tea.Cmd) {
	eventCh, err := a.ctrl.StartScan(context.Background())
	if err != nil {
		a.setStatus(err.Error(), true)
		if err == core.ErrNoRoot {
			a.prompt.Show(PromptFolder, "Choose Folder", "/path/to/scan", "")
		}
		return a, nil
	}

	a.scanEventCh = eventCh
	a.header.SetTarget(a.ctrl.Root(), a.ctrl.Limit())
	a.header.SetFindings(0, 0, 0)
	a.results.SetEntries(nil)
	a.setStatus("", false)

	return a, tea.Batch(
		a.listenForScanEvents(),
		tea.Tick(spinnerTickInterval, func(t time.Time) tea.Msg {
			return spinnerTickMsg{}
		}),
	)
}

// handleScanEvent processes scan events and continues listening
func (a App) handleScanEvent(event core.Event) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case core.ScanStartedEvent:
		a.header.SetScanning(true, "")
		return a, a.listenForScanEvents()

	case core.ScanProgressEvent:
		state := a.ctrl.ScanState()
		a.results.SetEntries(a.ctrl.Entries())
		progress := fmt.Sprintf("%d scanned, %d found, %s",
			state.Scanned, a.results.Count(), state.Elapsed())
		a.header.SetScanning(true, progress)
		return a, a.listenForScanEvents()

	case core.ScanCompletedEvent:
		a.header.SetScanning(false, "")
		a.results.SetEntries(a.ctrl.Entries())
		a.header.SetFindings(a.results.Count(), e.Added, e.Resolved)

		switch {
		case e.Outcome == scanner.Cancelled:
			a.setStatus("Scan cancelled, partial results shown", false)
		case len(e.Errors) > 0:
			a.setStatus(fmt.Sprintf("Scan complete, %d locations skipped", len(e.Errors)), false)
		default:
			a.setStatus("Scan complete", false)
		}
		return a, a.listenForScanEvents()

	default:
		return a, a.listenForScanEvents()
	}
}

// handleKey handles keyboard input
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay - any key closes it
	if a.help.IsVisible() {
		a.help.SetVisible(false)
		return a, nil
	}

	// Text prompt overlay
	if a.prompt.IsVisible() {
		switch {
		case key.Matches(msg, a.keys.Back):
			// Dismissal keeps prior state unchanged
			a.prompt.Hide()
			return a, nil
		case key.Matches(msg, a.keys.Enter):
			return a.confirmPrompt()
		}
		cmd := a.prompt.Update(msg)
		return a, cmd
	}

	// Quick roots overlay
	if a.rootSelector.IsVisible() {
		switch {
		case key.Matches(msg, a.keys.Back):
			a.rootSelector.SetVisible(false)
			return a, nil
		case key.Matches(msg, a.keys.Up):
			a.rootSelector.MoveUp()
			return a, nil
		case key.Matches(msg, a.keys.Down):
			a.rootSelector.MoveDown()
			return a, nil
		case key.Matches(msg, a.keys.Enter):
			a.rootSelector.SetVisible(false)
			if root := a.rootSelector.SelectedRoot(); root != nil {
				a.ctrl.SetRoot(root.Path)
				return a.startScan()
			}
			return a, nil
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.ctrl.Stop()
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.Toggle()
		return a, nil

	case key.Matches(msg, a.keys.Up):
		a.results.MoveUp()
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.results.MoveDown()
		return a, nil

	case key.Matches(msg, a.keys.PageUp):
		a.results.PageUp()
		return a, nil

	case key.Matches(msg, a.keys.PageDown):
		a.results.PageDown()
		return a, nil

	case key.Matches(msg, a.keys.Top):
		a.results.GoToTop()
		return a, nil

	case key.Matches(msg, a.keys.Bottom):
		a.results.GoToBottom()
		return a, nil

	case key.Matches(msg, a.keys.Rescan):
		return a.startScan()

	case key.Matches(msg, a.keys.CancelScan):
		if a.ctrl.ScanState().IsScanning() {
			a.ctrl.Cancel()
		}
		return a, nil

	case key.Matches(msg, a.keys.SetLimit):
		a.prompt.Show(PromptLimit, "Path Length Limit",
			fmt.Sprintf("%d", core.DefaultLimit),
			fmt.Sprintf("%d", a.ctrl.Limit()))
		return a, nil

	case key.Matches(msg, a.keys.PickFolder):
		a.prompt.Show(PromptFolder, "Choose Folder", "/path/to/scan", a.ctrl.Root())
		return a, nil

	case key.Matches(msg, a.keys.QuickRoots):
		if len(a.ctrl.Roots()) > 0 {
			a.rootSelector.SetVisible(true)
		}
		return a, nil

	case key.Matches(msg, a.keys.Export):
		a.prompt.Show(PromptExport, "Export CSV", "pathdive-report.csv", "pathdive-report.csv")
		return a, nil

	case key.Matches(msg, a.keys.OpenExplorer):
		return a, a.openInExplorer()

	case key.Matches(msg, a.keys.Preview):
		return a, a.previewSelected()
	}

	return a, nil
}

// confirmPrompt applies the prompt value according to its kind
func (a App) confirmPrompt() (tea.Model, tea.Cmd) {
	kind := a.prompt.Kind()
	value := a.prompt.Value()

	switch kind {
	case PromptFolder:
		a.prompt.Hide()
		if value == "" {
			// Treated as a dismissal
			return a, nil
		}
		a.ctrl.SetRoot(value)
		return a.startScan()

	case PromptLimit:
		if !a.ctrl.SetLimitInput(value) {
			a.prompt.SetError("enter a whole number, 0 or greater")
			return a, nil
		}
		a.prompt.Hide()
		a.header.SetTarget(a.ctrl.Root(), a.ctrl.Limit())
		a.setStatus(fmt.Sprintf("Limit set to %d, takes effect on next scan", a.ctrl.Limit()), false)
		return a, nil

	case PromptExport:
		a.prompt.Hide()
		if value == "" {
			a.setStatus("Export cancelled", false)
			return a, nil
		}
		summary, err := a.ctrl.Export(value)
		if err != nil {
			a.setStatus(fmt.Sprintf("Export failed: %v", err), true)
			return a, nil
		}
		a.setStatus(summary, false)
		return a, nil
	}

	a.prompt.Hide()
	return a, nil
}

// openInExplorer reveals the selected finding in the file manager
func (a *App) openInExplorer() tea.Cmd {
	entry := a.results.Selected()
	if entry == nil {
		return nil
	}
	logging.Debug.Printf("openInExplorer: revealing %s", entry.Path)
	if err := openInFileManager(entry.Path); err != nil {
		logging.Debug.Printf("openInExplorer: error: %v", err)
	}
	return nil
}

// previewSelected opens the selected finding in the platform previewer
func (a *App) previewSelected() tea.Cmd {
	entry := a.results.Selected()
	if entry == nil {
		return nil
	}
	logging.Debug.Printf("previewSelected: previewing %s", entry.Path)
	if err := previewFile(entry.Path); err != nil {
		logging.Debug.Printf("previewSelected: error: %v", err)
	}
	return nil
}

// setStatus sets the status line text
func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusIsErr = isErr
}

// updateLayout calculates component sizes
func (a *App) updateLayout() {
	headerHeight := 2
	statusHeight := 1
	helpBarHeight := 1

	panelHeight := a.height - headerHeight - statusHeight - helpBarHeight
	if panelHeight < 1 {
		panelHeight = 1
	}

	a.detailsWidth = 0
	resultsWidth := a.width
	if a.width >= 100 {
		a.detailsWidth = a.width * 2 / 5
		resultsWidth = a.width - a.detailsWidth
	}

	a.header.SetWidth(a.width)
	a.results.SetSize(resultsWidth, panelHeight)
	a.details.SetSize(a.detailsWidth, panelHeight)
	a.help.SetSize(a.width, a.height)
	a.rootSelector.SetSize(a.width, a.height)
	a.prompt.SetSize(a.width, a.height)
}

// View implements tea.Model
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, a.header.View())
	sections = append(sections, a.statusLine())
	sections = append(sections, a.mainPanels())
	sections = append(sections, HelpBar(a.width))
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Overlays
	if a.help.IsVisible() {
		return a.help.View()
	}
	if a.rootSelector.IsVisible() {
		return a.rootSelector.View()
	}
	if a.prompt.IsVisible() {
		return a.prompt.View()
	}

	return content
}

// statusLine renders the scan status or the last action result
func (a App) statusLine() string {
	state := a.ctrl.ScanState()
	if state.IsScanning() {
		spinnerIdx := int(time.Now().UnixMilli()/spinnerTickInterval.Milliseconds()) % len(spinnerFrames)
		spinnerStyle := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
		return StatusInfoStyle.Render(spinnerStyle.Render(spinnerFrames[spinnerIdx]) + " Scanning... press c to cancel")
	}
	if a.status == "" {
		return " "
	}
	if a.statusIsErr {
		return StatusErrorStyle.Render(a.status)
	}
	return StatusInfoStyle.Render(a.status)
}

// mainPanels renders the results list with the details panel beside it
func (a App) mainPanels() string {
	resultsView := a.results.View()

	if a.detailsWidth == 0 {
		return resultsView
	}
	detailsView := a.details.View(a.results.Selected(), a.ctrl.Limit())
	if detailsView == "" {
		return resultsView
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, resultsView, detailsView)
}
