package salonui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/config"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/events"
)

func page(results interface{}) map[string]interface{} {
	return map[string]interface{}{
		"count":    1,
		"next":     nil,
		"previous": nil,
		"results":  results,
	}
}

func newTestApp(t *testing.T) (*Model, *httptest.Server) {
	t.Helper()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/appointments/"):
			_ = json.NewEncoder(w).Encode(page([]salon.Appointment{{
				ID:           1,
				Employee:     2,
				Service:      4,
				ClientName:   "Anna Nowak",
				ServiceName:  "Haircut",
				Start:        start,
				End:          start.Add(time.Hour),
				Status:       salon.StatusPending,
				Capabilities: salon.Capabilities{CanConfirm: true, CanCancel: true},
			}}))
		case strings.HasPrefix(r.URL.Path, "/api/employees/"):
			_ = json.NewEncoder(w).Encode(page([]salon.Employee{
				{ID: 2, FirstName: "Ewa", LastName: "Lis", Skills: []int64{4}, Active: true},
			}))
		case strings.HasPrefix(r.URL.Path, "/api/services/"):
			_ = json.NewEncoder(w).Encode(page([]salon.Service{
				{ID: 4, Name: "Haircut", Price: "120.00", Active: true},
			}))
		case strings.HasPrefix(r.URL.Path, "/api/clients/"):
			_ = json.NewEncoder(w).Encode(page([]salon.Client{
				{ID: 7, FirstName: "Anna", LastName: "Nowak"},
			}))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	cfg := config.Config{URL: srv.URL, Role: config.RoleManager, Timeout: 5 * time.Second}
	backend := api.New(cfg.URL, "")
	source := &store.Source{API: backend}

	return New(cfg, backend, source), srv
}

func TestInitialLoadPopulatesList(t *testing.T) {
	m, _ := newTestApp(t)

	msg := m.loadAppointments()()
	loaded, ok := msg.(events.AppointmentsLoadedMsg)
	if !ok {
		t.Fatalf("expected AppointmentsLoadedMsg, got %T", msg)
	}
	if loaded.Err != nil {
		t.Fatalf("unexpected load error: %v", loaded.Err)
	}
	m.Update(loaded)

	lmsg := m.loadLookups(false)()
	m.Update(lmsg)

	view := m.View()
	if !strings.Contains(view, "Appointments (1)") {
		t.Fatalf("expected the loaded row count in view:\n%s", view)
	}
	if !strings.Contains(view, "Anna Nowak") {
		t.Fatalf("expected client name in view:\n%s", view)
	}
}

func TestOpenFormRoutesToOverlay(t *testing.T) {
	m, _ := newTestApp(t)
	m.Update(m.loadLookups(false)())

	_, _ = m.Update(events.OpenFormMsg{Component: "test"})
	if !m.form.Open() {
		t.Fatal("form should be open")
	}
	if !strings.Contains(m.View(), "New appointment") {
		t.Fatalf("expected the dialog in view:\n%s", m.View())
	}

	_, cmd := m.Update(events.FormClosedMsg{Component: "test", Saved: true})
	if cmd == nil {
		t.Fatal("a saved dialog must trigger a list reload")
	}
}

func TestListOptionsFollowRole(t *testing.T) {
	m, _ := newTestApp(t)

	m.cfg.Role = config.RoleClient
	if opts := m.listOptions(); !opts.Mine {
		t.Fatal("client role lists own appointments")
	}

	m.cfg.Role = config.RoleEmployee
	m.cfg.Employee = 2
	if opts := m.listOptions(); opts.Employee != 2 {
		t.Fatal("employee role lists own schedule")
	}

	m.cfg.Role = config.RoleManager
	if opts := m.listOptions(); opts.Mine || opts.Employee != 0 {
		t.Fatal("manager role lists everything")
	}
}
