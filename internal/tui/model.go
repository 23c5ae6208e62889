// Package tui implements the terminal interface: a two pane layout showing
// changed files on the left and the selected file's diff on the right, driven
// by events from the application layer.
package tui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/kestrelworks/watchhound/internal/app"
	"github.com/kestrelworks/watchhound/internal/git"
	"github.com/kestrelworks/watchhound/internal/nav"
	"github.com/kestrelworks/watchhound/internal/tui/components/dialog"
	"github.com/kestrelworks/watchhound/internal/tui/components/diffpane"
	"github.com/kestrelworks/watchhound/internal/tui/components/files"
	"github.com/kestrelworks/watchhound/internal/tui/components/status"
	"github.com/kestrelworks/watchhound/internal/tui/events"
	"github.com/kestrelworks/watchhound/internal/tui/styles"
)

const statusHeight = 1

// tickMsg drives the "updated X ago" clock.
type tickMsg time.Time

// Model is the top level Bubble Tea model wiring application events to the
// pane components.
type Model struct {
	width  int
	height int

	app  *app.App
	keys KeyMap

	nav      *nav.State
	snapshot git.Snapshot
	lastSeq  uint64

	filesPane *files.Model
	diffPane  *diffpane.Model
	statusBar *status.Component
	help      *dialog.Help

	spinner    spinner.Model
	refreshing int

	eventSub <-chan events.Event
}

// New creates the TUI model bound to the given application instance.
func New(appInstance *app.App) *Model {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))

	statusBar := status.New()
	statusBar.SetHints("?: help • r: refresh • ←/→: files • space: page • q: quit")

	m := &Model{
		app:       appInstance,
		keys:      DefaultKeyMap(),
		nav:       nav.NewState(),
		filesPane: files.New(),
		diffPane:  diffpane.New(),
		statusBar: statusBar,
		help:      dialog.NewHelp(),
		spinner:   s,
	}

	// Subscribe to all events
	m.eventSub = appInstance.EventBroker.Subscribe()

	return m
}

// Init starts event processing and kicks off the first snapshot.
func (m *Model) Init() tea.Cmd {
	m.app.Refresh.Refresh()

	return tea.Batch(
		m.listenForEvents(),
		m.spinner.Tick,
		m.tick(),
	)
}

// Update handles all TUI updates and routes to components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle events that come as messages
	if event, ok := msg.(events.Event); ok {
		cmd := m.handleEvent(event)
		cmds = append(cmds, cmd, m.listenForEvents())
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tickMsg:
		return m, m.tick()

	case spinner.TickMsg:
		if m.refreshing > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	// Remaining messages belong to the status bar timers
	_, cmd := m.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the two pane layout with the status bar at the bottom.
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Initializing...")
	}

	if m.help.IsOpen() {
		return tea.NewView(m.help.View())
	}

	leftWidth, rightWidth, paneHeight := m.layout()

	leftTitle := styles.Title.Render("Git Status")
	if m.refreshing > 0 {
		leftTitle += " " + m.spinner.View()
	}
	left := renderPane(leftTitle, m.filesPane.View(), leftWidth, paneHeight, styles.Border)

	rightTitle := styles.Title.Render("Git Diff")
	if path, ok := m.nav.Selected(); ok {
		rightTitle += styles.Muted.Render(fmt.Sprintf(" %s (%d/%d)", path, m.nav.Index()+1, m.nav.Count()))
	}
	right := renderPane(rightTitle, m.diffPane.View(), rightWidth, paneHeight, styles.BorderFocus)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, panes, m.statusBar.View()))
}

func renderPane(title, body string, width, height int, border color.Color) string {
	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return lipgloss.NewStyle().
		Width(width - 2).
		Height(height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(content)
}

// layout returns the outer pane dimensions including borders.
func (m *Model) layout() (leftWidth, rightWidth, paneHeight int) {
	leftWidth = m.width * 2 / 5
	if leftWidth < 24 {
		leftWidth = 24
	}
	if leftWidth > m.width-20 {
		leftWidth = m.width / 2
	}
	rightWidth = m.width - leftWidth
	paneHeight = m.height - statusHeight
	return leftWidth, rightWidth, paneHeight
}

func (m *Model) resize() {
	leftWidth, rightWidth, paneHeight := m.layout()

	// Inner content loses the border plus the title line
	contentHeight := paneHeight - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.filesPane.SetSize(leftWidth-2, contentHeight)
	m.diffPane.SetSize(rightWidth-2, contentHeight)
	m.statusBar.SetSize(m.width, statusHeight)
	m.help.SetSize(m.width, m.height)
}

// tick re-arms the once a second clock used for the status bar timestamp.
func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenForEvents creates a command that waits for events
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event := <-m.eventSub
		return event
	}
}

// Event handling

func (m *Model) handleEvent(event events.Event) tea.Cmd {
	var cmds []tea.Cmd

	switch event.Type {
	case events.RefreshDueEvent:
		m.app.Refresh.Refresh()

	case events.RefreshStartedEvent:
		m.refreshing++
		cmds = append(cmds, m.spinner.Tick)

	case events.SnapshotEvent:
		if payload, ok := event.Payload.(events.SnapshotPayload); ok {
			cmds = append(cmds, m.applySnapshot(payload))
		}

	case events.DiffEvent:
		if payload, ok := event.Payload.(events.DiffPayload); ok {
			m.applyDiff(payload)
		}

	case events.WatchErrorEvent:
		if payload, ok := event.Payload.(events.WatchErrorPayload); ok {
			cmds = append(cmds, m.statusBar.ShowWarning("watch: "+payload.Err.Error()))
		}

	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			switch payload.Type {
			case "error":
				cmds = append(cmds, m.statusBar.ShowError(payload.Message))
			case "warning":
				cmds = append(cmds, m.statusBar.ShowWarning(payload.Message))
			case "success":
				cmds = append(cmds, m.statusBar.ShowSuccess(payload.Message))
			default:
				cmds = append(cmds, m.statusBar.ShowInfo(payload.Message))
			}
		}
	}

	return tea.Batch(cmds...)
}

// applySnapshot installs a completed snapshot, dropping results that finished
// before one already on screen.
func (m *Model) applySnapshot(payload events.SnapshotPayload) tea.Cmd {
	if m.refreshing > 0 {
		m.refreshing--
	}
	if payload.Seq <= m.lastSeq {
		return nil
	}
	m.lastSeq = payload.Seq

	m.snapshot = payload.Snapshot

	if payload.Snapshot.Err != nil {
		m.filesPane.SetError(payload.Snapshot.Err)
		return m.statusBar.ShowError("refresh failed: " + payload.Snapshot.Err.Error())
	}
	m.statusBar.SetLastUpdate(payload.Snapshot.Taken)

	m.nav.ApplySnapshot(payload.Snapshot.Paths())
	m.filesPane.SetFiles(payload.Snapshot.Files, m.nav.Index())
	m.syncDiff()
	return nil
}

// applyDiff installs diff text only when it still matches the selection.
func (m *Model) applyDiff(payload events.DiffPayload) {
	path, ok := m.nav.Selected()
	if !ok || path != payload.Path {
		return
	}
	m.diffPane.SetPayload(payload.Path, payload.Text, payload.Err)
	m.diffPane.SetOffset(m.nav.Offset())
}

// syncDiff requests the diff for the current selection, or clears the pane
// when nothing is selected.
func (m *Model) syncDiff() {
	path, ok := m.nav.Selected()
	if !ok {
		m.diffPane.SetEmpty()
		return
	}
	m.diffPane.SetOffset(m.nav.Offset())
	m.app.Refresh.LoadDiff(path)
}

// Key handling

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.help.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.app.Shutdown()
			return tea.Quit
		default:
			m.help.Close()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.app.Shutdown()
		return tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		m.app.Debounce.Cancel()
		m.app.Refresh.Refresh()

	case key.Matches(msg, m.keys.PrevFile):
		if m.nav.Prev() {
			m.filesPane.SetSelected(m.nav.Index())
			m.syncDiff()
		}

	case key.Matches(msg, m.keys.NextFile):
		if m.nav.Next() {
			m.filesPane.SetSelected(m.nav.Index())
			m.syncDiff()
		}

	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.diffPane.PageSize())

	case key.Matches(msg, m.keys.LineDown):
		m.scrollBy(1)

	case key.Matches(msg, m.keys.LineUp):
		m.scrollBy(-1)

	case key.Matches(msg, m.keys.Top):
		m.nav.ScrollTop()
		m.diffPane.SetOffset(0)

	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
	}

	return nil
}

// scrollBy moves the diff offset, clamped to the rendered content.
func (m *Model) scrollBy(n int) {
	m.nav.ScrollBy(n)
	if over := m.nav.Offset() - m.diffPane.MaxOffset(); over > 0 {
		m.nav.ScrollBy(-over)
	}
	m.diffPane.SetOffset(m.nav.Offset())
}
