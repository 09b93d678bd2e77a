package appointmentform

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/booking"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/components/slotpicker"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/events"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/theme"
)

type focusField int

const (
	fieldClient focusField = iota
	fieldEmployee
	fieldService
	fieldDate
	fieldSlot
	fieldNotes
)

// SubmitAPI is the slice of the backend client the form needs.
type SubmitAPI interface {
	CreateAppointment(ctx context.Context, in api.AppointmentInput) (*salon.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, in api.AppointmentInput) (*salon.Appointment, error)
}

// Model is the create/edit overlay. It owns the booking form controller
// and the slot fetcher, cycles focus across the fields, and freezes
// everything but notes when the controller is in restricted mode.
type Model struct {
	id events.ComponentID
	th theme.Theme

	backend SubmitAPI
	form    *booking.Form
	fetcher *booking.SlotFetcher
	picker  *slotpicker.Model

	lookups        *store.Lookups
	lookupsLoading bool
	services       []salon.Service // filtered by the selected employee's skills

	clientIndex   int
	employeeIndex int
	serviceIndex  int

	focus      focusField
	notesInput textinput.Model

	width int
}

// New constructs a closed form overlay.
func New(th theme.Theme, backend SubmitAPI, availability booking.AvailabilityAPI) *Model {
	notes := textinput.New()
	notes.Placeholder = "internal notes…"
	notes.Prompt = ""

	return &Model{
		id:         events.ComponentID("appointment-form"),
		th:         th,
		backend:    backend,
		form:       &booking.Form{},
		fetcher:    booking.NewSlotFetcher(availability),
		picker:     slotpicker.New(th),
		notesInput: notes,
	}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Open reports whether the dialog is active.
func (m *Model) Open() bool { return m.form.Open() }

// Form exposes the controller for the root model's tests.
func (m *Model) Form() *booking.Form { return m.form }

// SetLookups hands the form the lookup snapshot its option lists render
// from. While lookups are loading the submit gate stays closed.
func (m *Model) SetLookups(l *store.Lookups, loading bool) {
	m.lookups = l
	m.lookupsLoading = loading
	m.syncOptions()
}

// SetWidth configures the overlay width.
func (m *Model) SetWidth(w int) {
	if w <= 0 {
		w = 64
	}
	m.width = w
	m.notesInput.SetWidth(w - 16)
}

// OpenCreate starts the create flow. In the employee-facing flow the
// acting employee is pre-bound.
func (m *Model) OpenCreate(actingEmployee int64) tea.Cmd {
	m.form.OpenCreate(actingEmployee)
	m.form.SetDate(startOfDay(time.Now()))
	m.focus = fieldClient
	m.notesInput.SetValue("")
	m.syncOptions()
	return tea.Batch(m.refreshSlots(), m.updateInputFocus())
}

// OpenEdit starts the edit flow. Past appointments open restricted, skip
// slot fetching entirely, and focus the one editable field.
func (m *Model) OpenEdit(appt salon.Appointment) tea.Cmd {
	m.form.OpenEdit(appt, time.Now())
	m.notesInput.SetValue(appt.InternalNotes)
	if m.form.Restricted() {
		m.focus = fieldNotes
	} else {
		m.focus = fieldSlot
	}
	m.syncOptions()
	return tea.Batch(m.refreshSlots(), m.updateInputFocus())
}

// Update processes Bubble Tea messages while the dialog is open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.form.Open() {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case booking.SlotsMsg:
		if !m.fetcher.Apply(msg) {
			return nil // stale generation
		}
		if m.fetcher.Err() != "" {
			m.form.SlotFetchFailed()
			m.picker.SetError(m.fetcher.Err())
			return nil
		}
		m.picker.SetSlots(m.fetcher.Slots())
		if m.form.ReconcileSlots(m.fetcher) {
			return events.NotifyCmd(m.id, events.LevelInfo,
				"The selected time is no longer available.")
		}
		m.picker.AlignTo(m.form.Draft().Start)
		return nil

	case events.SubmitResultMsg:
		if msg.Err != nil {
			m.form.FailSubmit(api.Message(msg.Err))
			return nil
		}
		m.form.FinishSubmit()
		m.fetcher.Clear()
		return tea.Batch(
			events.NotifyCmd(m.id, events.LevelSuccess, "Appointment saved."),
			events.FormClosedCmd(m.id, true),
		)
	}

	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	m.form.SetNotes(m.notesInput.Value())
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.form.Phase() == booking.PhaseSubmitting {
		return nil // controls are frozen while the request is in flight
	}

	switch msg.String() {
	case "esc":
		m.form.Close()
		m.fetcher.Clear()
		return events.FormClosedCmd(m.id, false)
	case "tab":
		m.advanceFocus(1)
		return m.updateInputFocus()
	case "shift+tab":
		m.advanceFocus(-1)
		return m.updateInputFocus()
	case "enter":
		if m.focus == fieldSlot && !m.form.Restricted() {
			if slot, ok := m.picker.Current(); ok {
				m.form.SelectSlot(slot)
				return nil
			}
		}
		return m.submit()
	case "ctrl+s":
		return m.submit()
	}

	if m.form.Restricted() && m.focus != fieldNotes {
		return nil
	}

	switch m.focus {
	case fieldClient:
		switch msg.String() {
		case "left", "h":
			m.cycleClient(-1)
		case "right", "l":
			m.cycleClient(1)
		}
	case fieldEmployee:
		switch msg.String() {
		case "left", "h":
			return m.cycleEmployee(-1)
		case "right", "l":
			return m.cycleEmployee(1)
		}
	case fieldService:
		switch msg.String() {
		case "left", "h":
			return m.cycleService(-1)
		case "right", "l":
			return m.cycleService(1)
		}
	case fieldDate:
		switch msg.String() {
		case "left", "h":
			return m.shiftDate(-1)
		case "right", "l":
			return m.shiftDate(1)
		}
	case fieldSlot:
		switch msg.String() {
		case "up", "k":
			m.picker.Move(-1)
		case "down", "j":
			m.picker.Move(1)
		}
	case fieldNotes:
		var cmd tea.Cmd
		m.notesInput, cmd = m.notesInput.Update(msg)
		m.form.SetNotes(m.notesInput.Value())
		return cmd
	}
	return nil
}

func (m *Model) focusSequence() []focusField {
	if m.form.Restricted() {
		return []focusField{fieldNotes}
	}
	return []focusField{
		fieldClient,
		fieldEmployee,
		fieldService,
		fieldDate,
		fieldSlot,
		fieldNotes,
	}
}

func (m *Model) advanceFocus(delta int) {
	seq := m.focusSequence()
	current := 0
	for i, f := range seq {
		if f == m.focus {
			current = i
			break
		}
	}
	current = (current + len(seq) + delta) % len(seq)
	m.focus = seq[current]
}

func (m *Model) updateInputFocus() tea.Cmd {
	if m.focus == fieldNotes {
		return m.notesInput.Focus()
	}
	m.notesInput.Blur()
	return nil
}

func (m *Model) cycleClient(delta int) {
	clients := m.clientOptions()
	if len(clients) == 0 {
		return
	}
	m.clientIndex = clampIndex(m.clientIndex+delta, len(clients)+1)
	if m.clientIndex == 0 {
		m.form.SetClient(nil)
		return
	}
	id := clients[m.clientIndex-1].ID
	m.form.SetClient(&id)
}

func (m *Model) cycleEmployee(delta int) tea.Cmd {
	employees := m.employeeOptions()
	if len(employees) == 0 {
		return nil
	}
	m.employeeIndex = clampIndex(m.employeeIndex+delta, len(employees))
	m.form.SetEmployee(employees[m.employeeIndex])
	m.syncOptions()
	return m.refreshSlots()
}

func (m *Model) cycleService(delta int) tea.Cmd {
	if len(m.services) == 0 {
		return nil
	}
	m.serviceIndex = clampIndex(m.serviceIndex+delta, len(m.services))
	m.form.SetService(m.services[m.serviceIndex].ID)
	return m.refreshSlots()
}

func (m *Model) shiftDate(days int) tea.Cmd {
	d := m.form.Draft().Date
	if d.IsZero() {
		d = startOfDay(time.Now())
	}
	m.form.SetDate(d.AddDate(0, 0, days))
	return m.refreshSlots()
}

// refreshSlots asks the fetcher for the current triple. An incomplete
// triple or a restricted session clears the picker without any request.
func (m *Model) refreshSlots() tea.Cmd {
	employee, service, date, ok := m.form.NeedsSlots()
	if !ok {
		m.fetcher.Clear()
		m.picker.SetSlots(nil)
		return nil
	}
	m.picker.SetLoading(true)
	return m.fetcher.Refresh(employee, service, date)
}

func (m *Model) submit() tea.Cmd {
	if !m.form.CanSubmit(m.lookupsLoading, m.fetcher.Loading()) {
		return nil
	}
	m.form.BeginSubmit()
	in := m.form.Payload()

	if m.form.Mode() == booking.ModeEdit {
		id := m.form.Source().ID
		return func() tea.Msg {
			appt, err := m.backend.UpdateAppointment(context.Background(), id, in)
			return events.SubmitResultMsg{Appointment: appt, Err: err}
		}
	}
	return func() tea.Msg {
		appt, err := m.backend.CreateAppointment(context.Background(), in)
		return events.SubmitResultMsg{Appointment: appt, Err: err}
	}
}

// syncOptions rebuilds the option lists and realigns the cycling indices
// with the draft after any employee/lookup change.
func (m *Model) syncOptions() {
	d := m.form.Draft()

	m.services = m.serviceOptions(d.Employee)
	m.serviceIndex = 0
	for i, s := range m.services {
		if s.ID == d.Service {
			m.serviceIndex = i
			break
		}
	}

	employees := m.employeeOptions()
	m.employeeIndex = 0
	for i, e := range employees {
		if e.ID == d.Employee {
			m.employeeIndex = i
			break
		}
	}

	clients := m.clientOptions()
	m.clientIndex = 0
	if d.Client != nil {
		for i, c := range clients {
			if c.ID == *d.Client {
				m.clientIndex = i + 1
				break
			}
		}
	}
}

func (m *Model) clientOptions() []salon.Client {
	if m.lookups == nil {
		return nil
	}
	return m.lookups.Clients
}

func (m *Model) employeeOptions() []salon.Employee {
	if m.lookups == nil {
		return nil
	}
	active := make([]salon.Employee, 0, len(m.lookups.Employees))
	for _, e := range m.lookups.Employees {
		if e.Active {
			active = append(active, e)
		}
	}
	return active
}

// serviceOptions filters the catalog to what the selected employee is
// qualified for. With no employee selected nothing is offered yet.
func (m *Model) serviceOptions(employeeID int64) []salon.Service {
	if m.lookups == nil || employeeID <= 0 {
		return nil
	}
	emp, ok := m.lookups.Employee(employeeID)
	if !ok {
		return nil
	}
	out := make([]salon.Service, 0, len(emp.Skills))
	for _, s := range m.lookups.Services {
		if s.Active && emp.HasSkill(s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// View renders the overlay.
func (m *Model) View() string {
	if !m.form.Open() {
		return ""
	}
	d := m.form.Draft()

	title := "New appointment"
	if m.form.Mode() == booking.ModeEdit {
		title = fmt.Sprintf("Appointment #%d", m.form.Source().ID)
		if m.form.Restricted() {
			title += " · past — notes only"
		}
	}

	lines := []string{m.th.Title.Render(title), ""}
	lines = append(lines,
		m.fieldRow(fieldClient, "Client", m.clientValue()),
		m.fieldRow(fieldEmployee, "Employee", m.employeeValue()),
		m.fieldRow(fieldService, "Service", m.serviceValue()),
		m.fieldRow(fieldDate, "Date", m.dateValue(d.Date)),
		"",
	)

	if m.form.Restricted() {
		lines = append(lines, m.th.Disabled.Render(
			"  "+salon.FormatTimeRange(d.Start, d.End)))
	} else {
		lines = append(lines, m.picker.View(m.focus == fieldSlot, d.Start))
	}

	lines = append(lines, "", m.fieldRow(fieldNotes, "Notes", m.notesInput.View()))

	if msg := m.form.Err(); msg != "" {
		lines = append(lines, "", m.th.Error.Render(msg))
	}
	lines = append(lines, "", m.th.Faint.Render(m.statusLine()))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	width := m.width
	if width <= 0 {
		width = 64
	}
	return m.th.Frame.Width(width).Render(body)
}

func (m *Model) fieldRow(f focusField, label, value string) string {
	style := m.th.Value
	if m.form.Restricted() && f != fieldNotes {
		style = m.th.Disabled
	}
	marker := "  "
	if f == m.focus {
		marker = "» "
		if !m.form.Restricted() || f == fieldNotes {
			style = m.th.Selected
		}
	}
	return marker + m.th.Label.Render(fmt.Sprintf("%-9s", label)) + style.Render(value)
}

func (m *Model) clientValue() string {
	d := m.form.Draft()
	if d.Client == nil {
		return "(select)"
	}
	return m.lookups.ClientName(d.Client)
}

func (m *Model) employeeValue() string {
	d := m.form.Draft()
	if d.Employee <= 0 {
		return "(select)"
	}
	return m.lookups.EmployeeName(d.Employee)
}

func (m *Model) serviceValue() string {
	d := m.form.Draft()
	if d.Service <= 0 {
		if d.Employee > 0 && len(m.services) == 0 {
			return "(no services for this employee)"
		}
		return "(select)"
	}
	name := m.lookups.ServiceName(d.Service)
	if svc, ok := m.lookups.Service(d.Service); ok {
		return fmt.Sprintf("%s · %s", name, salon.FormatPriceString(svc.Price))
	}
	return name
}

func (m *Model) dateValue(d time.Time) string {
	if d.IsZero() {
		return "(select)"
	}
	return salon.FormatDate(d)
}

func (m *Model) statusLine() string {
	if m.form.Phase() == booking.PhaseSubmitting {
		return "saving…"
	}
	if m.form.CanSubmit(m.lookupsLoading, m.fetcher.Loading()) {
		return "enter/ctrl+s save · tab fields · esc close"
	}
	if m.lookupsLoading {
		return "loading lookups…"
	}
	return "tab fields · ←/→ change · esc close"
}

func clampIndex(idx, length int) int {
	if length <= 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
