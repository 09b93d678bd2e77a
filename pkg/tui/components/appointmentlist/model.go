package appointmentlist

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/booking"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/config"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/events"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/theme"
)

const maxVisible = 14

// Model is the appointment list. Keys dispatch status transitions through
// the action dispatcher; which keys do anything depends on the configured
// role and the server-computed capability flags on each row.
type Model struct {
	id events.ComponentID
	th theme.Theme

	role       string
	dispatcher *booking.Dispatcher
	lookups    *store.Lookups

	appointments []salon.Appointment
	loading      bool
	errMsg       string

	cursor int
	offset int
	width  int
}

// New constructs the list for the given role.
func New(th theme.Theme, role string, dispatcher *booking.Dispatcher) *Model {
	return &Model{
		id:         events.ComponentID("appointment-list"),
		th:         th,
		role:       role,
		dispatcher: dispatcher,
		loading:    true,
	}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// SetLookups hands the list the name-resolution snapshot.
func (m *Model) SetLookups(l *store.Lookups) { m.lookups = l }

// SetWidth configures the render width.
func (m *Model) SetWidth(w int) { m.width = w }

// SetLoading marks a list fetch in flight.
func (m *Model) SetLoading() {
	m.loading = true
	m.errMsg = ""
}

// SetAppointments replaces the rows after a finished fetch.
func (m *Model) SetAppointments(appts []salon.Appointment, err error) {
	m.loading = false
	if err != nil {
		m.errMsg = api.Message(err)
		return
	}
	m.errMsg = ""
	m.appointments = appts
	if m.cursor >= len(appts) {
		m.cursor = len(appts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

// ReplaceRow swaps the updated appointment into the list wholesale.
func (m *Model) ReplaceRow(updated *salon.Appointment) {
	m.appointments = booking.ReplaceRow(m.appointments, updated)
}

// Current returns the row under the cursor.
func (m *Model) Current() (salon.Appointment, bool) {
	if m.cursor < 0 || m.cursor >= len(m.appointments) {
		return salon.Appointment{}, false
	}
	return m.appointments[m.cursor], true
}

// Update processes key and dispatch messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case booking.ActionResultMsg:
		m.dispatcher.Apply(msg)
		if msg.Err != nil {
			return events.NotifyCmd(m.id, events.LevelError, api.Message(msg.Err))
		}
		m.ReplaceRow(msg.Appt)
		return events.NotifyCmd(m.id, events.LevelSuccess,
			fmt.Sprintf("Appointment #%d: %s.", msg.ID, msg.Action.Label()))
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		m.move(-1)
		return nil
	case "down", "j":
		m.move(1)
		return nil
	case "r":
		m.SetLoading()
		return events.ReloadAppointmentsCmd(m.id)
	case "a":
		if m.role == config.RoleClient {
			return nil
		}
		return events.OpenFormCmd(m.id, nil)
	case "e", "enter":
		if m.role == config.RoleClient {
			return nil
		}
		if appt, ok := m.Current(); ok {
			return events.OpenFormCmd(m.id, &appt)
		}
		return nil
	case "c":
		return m.dispatch(booking.ActionConfirm)
	case "x":
		return m.dispatch(booking.ActionCancel)
	case "d":
		return m.dispatch(booking.ActionComplete)
	case "n":
		return m.dispatch(booking.ActionNoShow)
	}
	return nil
}

// dispatch routes a transition for the current row through the role gates:
// clients only cancel their own future bookings, employees serialize to
// one action at a time, and everything still defers to the capability
// flags inside the dispatcher.
func (m *Model) dispatch(action booking.Action) tea.Cmd {
	appt, ok := m.Current()
	if !ok {
		return nil
	}
	switch m.role {
	case config.RoleClient:
		if action != booking.ActionCancel || !booking.ClientMayCancel(appt, time.Now()) {
			return nil
		}
	case config.RoleEmployee:
		if m.dispatcher.Busy() {
			return nil
		}
	}
	reason := ""
	if action == booking.ActionCancel {
		reason = "Cancelled from terminal"
	}
	return m.dispatcher.Dispatch(appt, action, reason)
}

func (m *Model) move(delta int) {
	if len(m.appointments) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.appointments) {
		m.cursor = len(m.appointments) - 1
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisible {
		m.offset = m.cursor - maxVisible + 1
	}
}

// View renders the list.
func (m *Model) View() string {
	title := m.th.Title.Render(fmt.Sprintf("Appointments (%d)", len(m.appointments)))

	if m.loading {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.th.Faint.Render("  loading…"))
	}
	if m.errMsg != "" {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.th.Error.Render("  "+m.errMsg))
	}
	if len(m.appointments) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.th.Faint.Render("  no appointments"))
	}

	end := m.offset + maxVisible
	if end > len(m.appointments) {
		end = len(m.appointments)
	}

	lines := []string{title}
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.row(i))
	}
	lines = append(lines, "", m.th.Faint.Render(m.helpLine()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) row(i int) string {
	appt := m.appointments[i]

	marker := "  "
	if i == m.cursor {
		marker = "» "
	}
	busy := " "
	if m.dispatcher.RowBusy(appt.ID) {
		busy = "…"
	}

	client := appt.ClientName
	if client == "" {
		client = m.lookups.ClientName(appt.Client)
	}
	service := appt.ServiceName
	if service == "" {
		service = m.lookups.ServiceName(appt.Service)
	}

	status := theme.Status(appt.Status).Render(
		fmt.Sprintf("%s %-11s", appt.Status.Symbol(), appt.Status.Label()))

	line := fmt.Sprintf("%s%s %s  %-20.20s %-20.20s %s",
		marker, busy,
		salon.FormatTimeRange(appt.Start, appt.End),
		client, service, status)

	if i == m.cursor {
		return m.th.Selected.Render(line)
	}
	return m.th.Value.Render(line)
}

func (m *Model) helpLine() string {
	if m.role == config.RoleClient {
		return "↑/↓ move · x cancel · r reload · q quit"
	}
	return "↑/↓ move · a add · e edit · c confirm · x cancel · d complete · n no-show · r reload · q quit"
}
