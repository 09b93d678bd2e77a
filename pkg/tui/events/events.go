// Package events defines the typed message bus shared by the TUI
// components. Notifications travel through it as ordinary Bubble Tea
// messages instead of a module-level callback, so there is no hidden
// global notifier tied to process lifetime.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// Level classifies a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// NotificationMsg is a transient toast surfaced by the notification bar.
type NotificationMsg struct {
	Component ComponentID
	Level     Level
	Text      string
}

// Describe renders the notification for logs.
func (m NotificationMsg) Describe() string {
	return fmt.Sprintf(`level:%q text:%q`, m.Level, m.Text)
}

// NotifyCmd wraps a NotificationMsg in a tea.Cmd.
func NotifyCmd(component ComponentID, level Level, text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Component: component, Level: level, Text: text}
	}
}

// ReloadAppointmentsMsg asks the root model to reload the appointment list.
type ReloadAppointmentsMsg struct {
	Component ComponentID
}

// ReloadAppointmentsCmd wraps ReloadAppointmentsMsg in a tea.Cmd.
func ReloadAppointmentsCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return ReloadAppointmentsMsg{Component: component}
	}
}

// AppointmentsLoadedMsg carries a finished list fetch.
type AppointmentsLoadedMsg struct {
	Appointments []salon.Appointment
	Err          error
}

// LookupsLoadedMsg carries a finished lookup resolve.
type LookupsLoadedMsg struct {
	Lookups *store.Lookups
	Err     error
}

// OpenFormMsg asks the root model to open the booking dialog. A nil
// Appointment opens the create flow; otherwise the edit flow for that
// appointment.
type OpenFormMsg struct {
	Component   ComponentID
	Appointment *salon.Appointment
}

// OpenFormCmd wraps OpenFormMsg in a tea.Cmd.
func OpenFormCmd(component ComponentID, appt *salon.Appointment) tea.Cmd {
	return func() tea.Msg {
		return OpenFormMsg{Component: component, Appointment: appt}
	}
}

// FormClosedMsg announces the booking dialog closed. Saved is true after a
// successful submit, which triggers a list reload.
type FormClosedMsg struct {
	Component ComponentID
	Saved     bool
}

// FormClosedCmd wraps FormClosedMsg in a tea.Cmd.
func FormClosedCmd(component ComponentID, saved bool) tea.Cmd {
	return func() tea.Msg {
		return FormClosedMsg{Component: component, Saved: saved}
	}
}

// SubmitResultMsg carries the outcome of a create/update request back to
// the booking dialog.
type SubmitResultMsg struct {
	Appointment *salon.Appointment
	Err         error
}
