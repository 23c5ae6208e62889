// Package dialog contains overlay dialogs drawn on top of the main layout.
package dialog

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/kestrelworks/watchhound/internal/tui/styles"
)

const helpMarkdown = `# Keys

## General

- ` + "`q` / `esc` / `ctrl+c`" + ` quit
- ` + "`r`" + ` refresh now
- ` + "`?`" + ` toggle this help

## Files

- ` + "`←` / `h`" + ` previous file
- ` + "`→` / `l`" + ` next file

## Diff

- ` + "`space` / `pgdown` / `f`" + ` page down
- ` + "`↓` / `j`" + ` scroll down
- ` + "`↑` / `k`" + ` scroll up
- ` + "`g`" + ` jump to top
`

// Help is the keyboard reference overlay.
type Help struct {
	open   bool
	width  int
	height int
}

// NewHelp creates the help overlay, initially closed.
func NewHelp() *Help {
	return &Help{}
}

// Toggle flips the overlay open or closed.
func (h *Help) Toggle() {
	h.open = !h.open
}

// IsOpen reports whether the overlay is visible.
func (h *Help) IsOpen() bool {
	return h.open
}

// Close hides the overlay.
func (h *Help) Close() {
	h.open = false
}

// SetSize stores the terminal dimensions used to center the dialog.
func (h *Help) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the centered dialog box.
func (h *Help) View() string {
	if !h.open {
		return ""
	}

	contentWidth := 44
	if h.width > 0 && contentWidth > h.width-4 {
		contentWidth = h.width - 4
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	body := styles.RenderMarkdown(helpMarkdown, contentWidth)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocus).
		Padding(0, 1).
		Render(body)

	if h.width == 0 || h.height == 0 {
		return box
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}
