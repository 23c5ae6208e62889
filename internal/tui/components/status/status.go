// Package status implements the bottom status bar: key hints, transient
// messages, and the last-updated clock.
package status

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/kestrelworks/watchhound/internal/tui/styles"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// StatusMessage represents a status bar message
type StatusMessage struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component implements a status bar that shows temporary messages over a
// persistent hints-and-clock line.
type Component struct {
	message    *StatusMessage
	width      int
	hints      string
	lastUpdate time.Time

	clearAfter time.Duration
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
	}
}

// SetMessage sets a status message with the given type
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	c.message = &StatusMessage{
		Content:   content,
		Type:      msgType,
		Timestamp: time.Now(),
	}

	return tea.Tick(c.clearAfter, func(t time.Time) tea.Msg {
		return clearMessageMsg{timestamp: c.message.Timestamp}
	})
}

// ShowInfo shows an info message
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowWarning shows a warning message
func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

// ShowError shows an error message
func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, Error)
}

// ShowSuccess shows a success message
func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// SetHints sets the persistent key-hints text.
func (c *Component) SetHints(hints string) {
	c.hints = hints
}

// SetLastUpdate records when the last snapshot was taken.
func (c *Component) SetLastUpdate(t time.Time) {
	c.lastUpdate = t
}

// LastUpdate returns the recorded snapshot time.
func (c *Component) LastUpdate() time.Time {
	return c.lastUpdate
}

// SetSize implements the Sizeable interface
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

// Init implements the Component interface
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMessageMsg:
		// Only clear if this is for the current message
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}

	return c, nil
}

// View renders the status line.
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	left := styles.Muted.Render(c.hints)
	if c.message != nil {
		style := styles.InfoText
		switch c.message.Type {
		case Warning:
			style = styles.WarningText
		case Error:
			style = styles.ErrorText
		case Success:
			style = styles.SuccessText
		}
		left = style.Render(c.message.Content)
	}

	right := ""
	if !c.lastUpdate.IsZero() {
		right = styles.Muted.Render("updated " + humanize.Time(c.lastUpdate))
	}

	gap := c.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
