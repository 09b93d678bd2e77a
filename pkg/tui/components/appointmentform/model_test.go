package appointmentform

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/booking"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/events"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/theme"
)

type fakeBackend struct {
	slots   []salon.Slot
	created *api.AppointmentInput
	updated *api.AppointmentInput
}

func (f *fakeBackend) Availability(_ context.Context, _, _ int64, _ time.Time) (*api.Availability, error) {
	return &api.Availability{Slots: f.slots}, nil
}

func (f *fakeBackend) CreateAppointment(_ context.Context, in api.AppointmentInput) (*salon.Appointment, error) {
	f.created = &in
	return &salon.Appointment{ID: 100}, nil
}

func (f *fakeBackend) UpdateAppointment(_ context.Context, id int64, in api.AppointmentInput) (*salon.Appointment, error) {
	f.updated = &in
	return &salon.Appointment{ID: id}, nil
}

func testLookups() *store.Lookups {
	return &store.Lookups{
		Clients: []salon.Client{
			{ID: 7, FirstName: "Anna", LastName: "Nowak"},
		},
		Employees: []salon.Employee{
			{ID: 2, FirstName: "Ewa", LastName: "Lis", Skills: []int64{4}, Active: true},
		},
		Services: []salon.Service{
			{ID: 4, Name: "Haircut", Price: "120.00", Active: true},
		},
		FetchedAt: time.Now(),
	}
}

func newTestModel(backend *fakeBackend) *Model {
	m := New(theme.Default(), backend, backend)
	m.SetLookups(testLookups(), false)
	m.SetWidth(72)
	return m
}

func TestOpenEditPastIsRestricted(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)

	past := salon.Appointment{
		ID:            9,
		Employee:      2,
		Service:       4,
		Start:         time.Now().Add(-48 * time.Hour),
		End:           time.Now().Add(-47 * time.Hour),
		Status:        salon.StatusCompleted,
		InternalNotes: "colour 7.1",
	}
	cmd := m.OpenEdit(past)

	if !m.Form().Restricted() {
		t.Fatal("expected restricted mode for a past appointment")
	}
	if m.focus != fieldNotes {
		t.Fatalf("expected focus on notes, got %v", m.focus)
	}
	// A restricted session never fetches slots; the returned batch must
	// not contain a slot request.
	_ = cmd
	if m.fetcher.Loading() {
		t.Fatal("restricted edit must not start a slot fetch")
	}

	view := m.View()
	if !strings.Contains(view, "notes only") {
		t.Fatalf("expected restricted hint in view:\n%s", view)
	}
}

func TestRestrictedPayloadPreservesSchedule(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)

	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	past := salon.Appointment{
		ID:       9,
		Employee: 2,
		Service:  4,
		Start:    start,
		End:      start.Add(time.Hour),
		Status:   salon.StatusCompleted,
	}
	m.OpenEdit(past)

	// Everything but notes is frozen.
	m.cycleService(1)
	m.shiftDate(1)
	m.form.SetNotes("left-handed scissors")

	in := m.form.Payload()
	if in.Start != start.Format(time.RFC3339) {
		t.Fatalf("start changed in restricted mode: %s", in.Start)
	}
	if in.Status != salon.StatusCompleted {
		t.Fatalf("expected status carried through, got %q", in.Status)
	}
	if in.InternalNotes != "left-handed scissors" {
		t.Fatalf("notes not editable: %q", in.InternalNotes)
	}
}

func TestCreateFlowFetchesAndSelectsSlot(t *testing.T) {
	slotStart := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	backend := &fakeBackend{
		slots: []salon.Slot{{Start: slotStart, End: slotStart.Add(time.Hour)}},
	}
	m := newTestModel(backend)
	m.OpenCreate(0)

	m.cycleClient(1)
	cmd := m.cycleEmployee(1)
	if cmd != nil {
		// Employee alone is not a complete triple yet.
		t.Fatal("expected no slot fetch before service is chosen")
	}
	cmd = m.cycleService(1)
	if cmd == nil {
		t.Fatal("expected a slot fetch once the triple completed")
	}

	raw := cmd()
	msg, ok := raw.(booking.SlotsMsg)
	if !ok {
		t.Fatalf("expected SlotsMsg, got %T", raw)
	}
	m.Update(msg)

	if m.fetcher.Loading() {
		t.Fatal("fetch should be settled")
	}
	if len(m.fetcher.Slots()) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(m.fetcher.Slots()))
	}

	m.focus = fieldSlot
	slot, ok := m.picker.Current()
	if !ok {
		t.Fatal("picker has no current slot")
	}
	m.form.SelectSlot(slot)

	if !m.form.CanSubmit(false, m.fetcher.Loading()) {
		t.Fatal("expected a submittable draft")
	}

	submit := m.submit()
	if submit == nil {
		t.Fatal("expected submit command")
	}
	res, ok := submit().(events.SubmitResultMsg)
	if !ok || res.Err != nil {
		t.Fatalf("unexpected submit result: %+v", res)
	}
	if backend.created == nil {
		t.Fatal("create endpoint not called")
	}
	if backend.created.Start != slotStart.Format(time.RFC3339) {
		t.Fatalf("payload start mismatch: %s", backend.created.Start)
	}
}

func TestStaleSlotResponseDiscarded(t *testing.T) {
	slotStart := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	backend := &fakeBackend{
		slots: []salon.Slot{{Start: slotStart, End: slotStart.Add(time.Hour)}},
	}
	m := newTestModel(backend)
	m.OpenCreate(0)
	m.cycleClient(1)
	m.cycleEmployee(1)

	first := m.cycleService(1)
	firstMsg := first().(booking.SlotsMsg)

	// A date change supersedes the first request before it lands.
	second := m.shiftDate(1)
	if second == nil {
		t.Fatal("expected a new slot fetch after date change")
	}

	m.Update(firstMsg)
	if len(m.fetcher.Slots()) != 0 {
		t.Fatal("stale response must be discarded")
	}
}
