// Package salonui hosts the Bubble Tea program for the salon terminal.
package salonui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/booking"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/config"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/components/appointmentform"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/components/appointmentlist"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/components/notifybar"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/events"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/theme"
)

// Model is the root program state. It owns the list, the booking dialog
// overlay, and the notification bar, and routes typed messages between
// them.
type Model struct {
	cfg     config.Config
	backend *api.Client
	source  *store.Source

	th   theme.Theme
	list *appointmentlist.Model
	form *appointmentform.Model
	bar  *notifybar.Model

	lookupsLoading bool

	termWidth  int
	termHeight int
}

// New builds the root model from an authenticated backend client.
func New(cfg config.Config, backend *api.Client, source *store.Source) *Model {
	th := theme.Default()
	dispatcher := booking.NewDispatcher(backend)
	return &Model{
		cfg:            cfg,
		backend:        backend,
		source:         source,
		th:             th,
		list:           appointmentlist.New(th, cfg.Role, dispatcher),
		form:           appointmentform.New(th, backend, backend),
		bar:            notifybar.New(th),
		lookupsLoading: true,
	}
}

// Init kicks off the lookup and appointment loads.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadLookups(false), m.loadAppointments())
}

// listOptions scopes the appointment fetch by role: clients see their own
// bookings, employees their own schedule, managers everything.
func (m *Model) listOptions() api.ListOptions {
	switch m.cfg.Role {
	case config.RoleClient:
		return api.ListOptions{Mine: true}
	case config.RoleEmployee:
		return api.ListOptions{Employee: m.cfg.Employee}
	default:
		return api.ListOptions{}
	}
}

func (m *Model) loadAppointments() tea.Cmd {
	opts := m.listOptions()
	return func() tea.Msg {
		appts, err := m.backend.AllAppointments(context.Background(), opts)
		return events.AppointmentsLoadedMsg{Appointments: appts, Err: err}
	}
}

func (m *Model) loadLookups(refresh bool) tea.Cmd {
	return func() tea.Msg {
		lookups, err := m.source.Resolve(context.Background(), refresh)
		return events.LookupsLoadedMsg{Lookups: lookups, Err: err}
	}
}

func (m *Model) actingEmployee() int64 {
	if m.cfg.Role == config.RoleEmployee {
		return m.cfg.Employee
	}
	return 0
}

// Update routes messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.list.SetWidth(msg.Width)
		m.form.SetWidth(min(msg.Width-4, 72))
		return m, nil

	case tea.KeyMsg:
		if cmd := m.bar.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.form.Open() {
			if cmd := m.form.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "R":
			m.lookupsLoading = true
			m.form.SetLookups(nil, true)
			cmds = append(cmds, m.loadLookups(true))
		}
		if cmd := m.list.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case events.AppointmentsLoadedMsg:
		m.list.SetAppointments(msg.Appointments, msg.Err)
		return m, nil

	case events.LookupsLoadedMsg:
		m.lookupsLoading = false
		if msg.Err != nil {
			m.list.SetLookups(nil)
			m.form.SetLookups(nil, false)
			return m, events.NotifyCmd("app", events.LevelError, api.Message(msg.Err))
		}
		m.list.SetLookups(msg.Lookups)
		m.form.SetLookups(msg.Lookups, false)
		return m, nil

	case events.ReloadAppointmentsMsg:
		return m, m.loadAppointments()

	case events.OpenFormMsg:
		if msg.Appointment == nil {
			return m, m.form.OpenCreate(m.actingEmployee())
		}
		return m, m.form.OpenEdit(*msg.Appointment)

	case events.FormClosedMsg:
		if msg.Saved {
			m.list.SetLoading()
			return m, m.loadAppointments()
		}
		return m, nil

	case events.NotificationMsg:
		return m, m.bar.Update(msg)

	case booking.SlotsMsg, events.SubmitResultMsg:
		return m, m.form.Update(msg)

	case booking.ActionResultMsg:
		return m, m.list.Update(msg)
	}

	if m.form.Open() {
		return m, m.form.Update(msg)
	}
	return m, nil
}

// View renders the list, or the booking dialog when it is open, with the
// notification bar underneath.
func (m *Model) View() string {
	body := m.list.View()
	if m.form.Open() {
		body = m.form.View()
	}
	if bar := m.bar.View(); bar != "" {
		return lipgloss.JoinVertical(lipgloss.Left, body, "", bar)
	}
	return body
}

// Run launches the interactive terminal program.
func Run(cfg config.Config) error {
	backend := api.New(cfg.URL, cfg.Token, api.WithTimeout(cfg.Timeout))

	cache, err := store.Open("")
	if err != nil {
		return err
	}
	source := &store.Source{API: backend, Cache: cache, MaxAge: cfg.CacheMaxAge}

	p := tea.NewProgram(New(cfg, backend, source), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
