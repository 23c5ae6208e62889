// Package diffpane implements the right pane: the diff text for the
// currently selected file, windowed by the scroll offset.
package diffpane

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kestrelworks/watchhound/internal/tui/components/core"
	"github.com/kestrelworks/watchhound/internal/tui/styles"
)

// Model holds the diff payload for the selected file. The scroll offset is
// owned by the navigation state and handed in raw; clamping against the
// content happens here, at render time.
type Model struct {
	core.SizeableBase

	path   string
	lines  []string
	err    error
	empty  bool
	offset int
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates an empty diff pane.
func New() *Model {
	return &Model{empty: true}
}

// SetPayload replaces the displayed diff.
func (m *Model) SetPayload(path, text string, err error) {
	m.path = path
	m.err = err
	m.empty = false
	if err != nil {
		m.lines = nil
		return
	}
	m.lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
}

// SetEmpty switches the pane to the no-selection placeholder.
func (m *Model) SetEmpty() {
	m.path = ""
	m.lines = nil
	m.err = nil
	m.empty = true
}

// SetOffset updates the raw scroll offset.
func (m *Model) SetOffset(offset int) {
	m.offset = offset
}

// Path returns the path the pane currently shows.
func (m *Model) Path() string {
	return m.path
}

// PageSize returns the line count of one scroll page.
func (m *Model) PageSize() int {
	if m.Height < 1 {
		return 1
	}
	return m.Height
}

// MaxOffset returns the largest useful scroll offset for the current
// content: scrolling past it would show an empty window.
func (m *Model) MaxOffset() int {
	max := len(m.lines) - m.Height
	if max < 0 {
		return 0
	}
	return max
}

// Init implements the Component interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the visible window of the diff.
func (m *Model) View() string {
	if m.empty {
		return styles.Dim.Render("No changes to show")
	}
	if m.err != nil {
		return styles.ErrorText.Render("git error: " + m.err.Error())
	}
	if len(m.lines) == 0 || (len(m.lines) == 1 && m.lines[0] == "") {
		return styles.Dim.Render("No changes to show")
	}

	offset := m.offset
	if offset > m.MaxOffset() {
		offset = m.MaxOffset()
	}
	end := offset + m.Height
	if end > len(m.lines) {
		end = len(m.lines)
	}

	var sb strings.Builder
	for i, line := range m.lines[offset:end] {
		sb.WriteString(colorize(truncate(line, m.Width)))
		if i < end-offset-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// colorize applies conventional diff coloring by line prefix.
func colorize(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return styles.DiffMeta.Render(line)
	case strings.HasPrefix(line, "+"):
		return styles.DiffAdded.Render(line)
	case strings.HasPrefix(line, "-"):
		return styles.DiffRemoved.Render(line)
	case strings.HasPrefix(line, "@@"):
		return styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "diff --git"), strings.HasPrefix(line, "index "):
		return styles.DiffMeta.Render(line)
	default:
		return line
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "")
}
