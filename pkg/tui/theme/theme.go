package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Disabled lipgloss.Style
	Selected lipgloss.Style
	Faint    lipgloss.Style

	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 2),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:    lipgloss.NewStyle(),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),

		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Status returns the style for an appointment status.
func Status(s salon.Status) lipgloss.Style {
	switch s {
	case salon.StatusPending:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	case salon.StatusConfirmed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	case salon.StatusInProgress:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	case salon.StatusCompleted:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	case salon.StatusCancelled:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	case salon.StatusNoShow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
}
