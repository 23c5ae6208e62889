// Package styles centralizes the lipgloss styles for the watchhound UI.
package styles

import (
	"github.com/charmbracelet/lipgloss/v2"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("239")).
		Italic(true)

	Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	ErrorText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	WarningText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	SuccessText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	InfoText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	// Diff line colors
	DiffAdded = lipgloss.NewStyle().
			Foreground(lipgloss.Color("84"))

	DiffRemoved = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	DiffHunk = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	DiffMeta = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Border colors for the two panes; the focused pane gets the brighter one.
var (
	Border      = lipgloss.Color("241")
	BorderFocus = lipgloss.Color("86")
)
