// Package files implements the left pane: the diffstat summary with the
// selected file highlighted.
package files

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kestrelworks/watchhound/internal/git"
	"github.com/kestrelworks/watchhound/internal/tui/components/core"
	"github.com/kestrelworks/watchhound/internal/tui/styles"
)

// Model renders the changed-file list. Selection lives in the navigation
// state; this component only displays it.
type Model struct {
	core.SizeableBase

	files    []git.ChangedFile
	selected int
	err      error
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates an empty file list pane.
func New() *Model {
	return &Model{selected: -1}
}

// SetFiles replaces the displayed list and selection index, clearing any
// error from an earlier failed refresh.
func (m *Model) SetFiles(files []git.ChangedFile, selected int) {
	m.files = files
	m.selected = selected
	m.err = nil
}

// SetSelected moves the highlight.
func (m *Model) SetSelected(selected int) {
	m.selected = selected
}

// SetError shows a summary-command failure in place of the list.
func (m *Model) SetError(err error) {
	m.err = err
}

// Init implements the Component interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the pane content.
func (m *Model) View() string {
	if m.err != nil {
		return styles.ErrorText.Render("git error: " + m.err.Error())
	}
	if len(m.files) == 0 {
		return styles.Dim.Render("No changes detected")
	}

	var sb strings.Builder
	for i, f := range m.files {
		line := truncate(f.StatLine, m.Width)
		if i == m.selected {
			sb.WriteString(styles.Selected.Render(line))
		} else {
			sb.WriteString(line)
		}
		if i < len(m.files)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
