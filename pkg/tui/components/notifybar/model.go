package notifybar

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/events"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/theme"
)

// Model renders the most recent notification at the bottom of the screen.
type Model struct {
	th    theme.Theme
	level events.Level
	text  string
}

// New constructs an empty bar.
func New(th theme.Theme) *Model {
	return &Model{th: th}
}

// Update latches the latest notification.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case events.NotificationMsg:
		m.level = msg.Level
		m.text = msg.Text
	case tea.KeyMsg:
		// any keypress clears the toast
		m.text = ""
	}
	return nil
}

// View renders the bar, or nothing when there is no message.
func (m *Model) View() string {
	if m.text == "" {
		return ""
	}
	switch m.level {
	case events.LevelSuccess:
		return m.th.Success.Render(" " + m.text + " ")
	case events.LevelError:
		return m.th.Error.Render(" " + m.text + " ")
	default:
		return m.th.Info.Render(" " + m.text + " ")
	}
}
