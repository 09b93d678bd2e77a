package appointmentlist

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/booking"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/config"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/events"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/theme"
)

type fakeActions struct {
	confirmed int64
	cancelled int64
}

func (f *fakeActions) ConfirmAppointment(_ context.Context, id int64) (*salon.Appointment, error) {
	f.confirmed = id
	return &salon.Appointment{ID: id, Status: salon.StatusConfirmed}, nil
}

func (f *fakeActions) CancelAppointment(_ context.Context, id int64, _ string) (*salon.Appointment, error) {
	f.cancelled = id
	return &salon.Appointment{ID: id, Status: salon.StatusCancelled}, nil
}

func (f *fakeActions) CompleteAppointment(_ context.Context, id int64) (*salon.Appointment, error) {
	return &salon.Appointment{ID: id, Status: salon.StatusCompleted}, nil
}

func (f *fakeActions) NoShowAppointment(_ context.Context, id int64) (*salon.Appointment, error) {
	return &salon.Appointment{ID: id, Status: salon.StatusNoShow}, nil
}

func newList(role string, backend *fakeActions, appts ...salon.Appointment) *Model {
	m := New(theme.Default(), role, booking.NewDispatcher(backend))
	m.SetAppointments(appts, nil)
	return m
}

func TestActionRespectsCapabilityFlags(t *testing.T) {
	backend := &fakeActions{}
	appt := salon.Appointment{
		ID:     1,
		Start:  time.Now().Add(2 * time.Hour),
		Status: salon.StatusPending,
		// CanConfirm deliberately false even though status is pending:
		// flags are authoritative, never re-derived from status.
	}
	m := newList(config.RoleManager, backend, appt)

	if cmd := m.dispatch(booking.ActionConfirm); cmd != nil {
		t.Fatal("expected no dispatch without the capability flag")
	}

	allowed := appt
	allowed.CanConfirm = true
	m.SetAppointments([]salon.Appointment{allowed}, nil)
	cmd := m.dispatch(booking.ActionConfirm)
	if cmd == nil {
		t.Fatal("expected dispatch with the capability flag set")
	}
	res := cmd().(booking.ActionResultMsg)
	if res.Err != nil || backend.confirmed != 1 {
		t.Fatalf("confirm not executed: %+v", res)
	}
}

func TestClientMayOnlyCancelFutureBookings(t *testing.T) {
	backend := &fakeActions{}
	future := salon.Appointment{
		ID:           1,
		Start:        time.Now().Add(2 * time.Hour),
		Status:       salon.StatusConfirmed,
		Capabilities: salon.Capabilities{CanCancel: true, CanConfirm: true},
	}
	m := newList(config.RoleClient, backend, future)

	if cmd := m.dispatch(booking.ActionConfirm); cmd != nil {
		t.Fatal("clients must not confirm")
	}
	if cmd := m.dispatch(booking.ActionCancel); cmd == nil {
		t.Fatal("client should cancel a future confirmed booking")
	}

	past := future
	past.ID = 2
	past.Start = time.Now().Add(-2 * time.Hour)
	m.SetAppointments([]salon.Appointment{past}, nil)
	if cmd := m.dispatch(booking.ActionCancel); cmd != nil {
		t.Fatal("client must not cancel a booking already started")
	}
}

func TestEmployeeSerializesActions(t *testing.T) {
	backend := &fakeActions{}
	a := salon.Appointment{
		ID:           1,
		Start:        time.Now().Add(time.Hour),
		Status:       salon.StatusPending,
		Capabilities: salon.Capabilities{CanConfirm: true},
	}
	b := a
	b.ID = 2
	m := newList(config.RoleEmployee, backend, a, b)

	if cmd := m.dispatch(booking.ActionConfirm); cmd == nil {
		t.Fatal("first action should dispatch")
	}
	m.move(1)
	if cmd := m.dispatch(booking.ActionConfirm); cmd != nil {
		t.Fatal("employee actions are one at a time")
	}
}

func TestActionResultReplacesRow(t *testing.T) {
	backend := &fakeActions{}
	appt := salon.Appointment{
		ID:           1,
		Start:        time.Now().Add(time.Hour),
		Status:       salon.StatusPending,
		Capabilities: salon.Capabilities{CanConfirm: true},
	}
	m := newList(config.RoleManager, backend, appt)

	cmd := m.dispatch(booking.ActionConfirm)
	res := cmd().(booking.ActionResultMsg)
	notify := m.Update(res)
	if notify == nil {
		t.Fatal("expected a success notification")
	}
	n := notify().(events.NotificationMsg)
	if n.Level != events.LevelSuccess {
		t.Fatalf("expected success, got %s: %s", n.Level, n.Text)
	}

	row, ok := m.Current()
	if !ok || row.Status != salon.StatusConfirmed {
		t.Fatalf("row not replaced wholesale: %+v", row)
	}
	if m.dispatcher.RowBusy(1) {
		t.Fatal("busy mark should clear after the result lands")
	}
}

func TestEmptyAndErrorStates(t *testing.T) {
	m := newList(config.RoleManager, &fakeActions{})
	m.SetAppointments(nil, nil)
	if v := m.View(); !strings.Contains(v, "no appointments") {
		t.Fatalf("expected empty state, got:\n%s", v)
	}

	m.SetAppointments(nil, errors.New("dial tcp: connection refused"))
	if v := m.View(); !strings.Contains(v, "Something went wrong") {
		t.Fatalf("expected reduced error message, got:\n%s", v)
	}
}
