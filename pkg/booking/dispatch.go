package booking

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

// Action is one of the appointment state transitions the backend exposes.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
	ActionNoShow   Action = "no-show"
)

// Label returns the display verb for the action.
func (a Action) Label() string {
	switch a {
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionComplete:
		return "Complete"
	case ActionNoShow:
		return "No-show"
	}
	return string(a)
}

// ActionAPI is the slice of the backend client the dispatcher needs.
type ActionAPI interface {
	ConfirmAppointment(ctx context.Context, id int64) (*salon.Appointment, error)
	CancelAppointment(ctx context.Context, id int64, reason string) (*salon.Appointment, error)
	CompleteAppointment(ctx context.Context, id int64) (*salon.Appointment, error)
	NoShowAppointment(ctx context.Context, id int64) (*salon.Appointment, error)
}

// ActionResultMsg reports a finished transition back into the event loop.
type ActionResultMsg struct {
	ID     int64
	Action Action
	Appt   *salon.Appointment
	Err    error
}

// Dispatcher executes state-transition requests gated by the
// server-computed capability flags. It allows at most one in-flight action
// per appointment id; callers that additionally want at most one globally
// (the employee list does) gate on Busy before dispatching. Different rows
// are otherwise free to mutate concurrently.
type Dispatcher struct {
	api      ActionAPI
	inFlight map[int64]bool
}

// NewDispatcher returns a dispatcher bound to the backend client.
func NewDispatcher(a ActionAPI) *Dispatcher {
	return &Dispatcher{api: a, inFlight: make(map[int64]bool)}
}

// Allowed reports whether the capability flag for the action is set on the
// appointment. Eligibility is never re-derived from the status code; the
// server's policy (buffer windows, role rules) is authoritative.
func Allowed(appt salon.Appointment, action Action) bool {
	switch action {
	case ActionConfirm:
		return appt.CanConfirm
	case ActionCancel:
		return appt.CanCancel
	case ActionComplete:
		return appt.CanComplete
	case ActionNoShow:
		return appt.CanNoShow
	}
	return false
}

// ClientMayCancel reports whether a client may cancel their own
// appointment: strictly future start and a pending or confirmed status,
// on top of the server's capability flag.
func ClientMayCancel(appt salon.Appointment, now time.Time) bool {
	if !appt.CanCancel {
		return false
	}
	if !appt.Start.After(now) {
		return false
	}
	return appt.Status == salon.StatusPending || appt.Status == salon.StatusConfirmed
}

// Dispatch starts the transition for the appointment. It returns nil when
// the capability flag is unset or an action for this id is already in
// flight.
func (d *Dispatcher) Dispatch(appt salon.Appointment, action Action, reason string) tea.Cmd {
	if !Allowed(appt, action) {
		return nil
	}
	if d.inFlight[appt.ID] {
		return nil
	}
	d.inFlight[appt.ID] = true

	id := appt.ID
	return func() tea.Msg {
		appt, err := d.call(context.Background(), id, action, reason)
		return ActionResultMsg{ID: id, Action: action, Appt: appt, Err: err}
	}
}

func (d *Dispatcher) call(ctx context.Context, id int64, action Action, reason string) (*salon.Appointment, error) {
	switch action {
	case ActionConfirm:
		return d.api.ConfirmAppointment(ctx, id)
	case ActionCancel:
		return d.api.CancelAppointment(ctx, id, reason)
	case ActionComplete:
		return d.api.CompleteAppointment(ctx, id)
	case ActionNoShow:
		return d.api.NoShowAppointment(ctx, id)
	}
	return nil, fmt.Errorf("unknown action %q", action)
}

// Apply clears the busy mark for a finished action. On failure the local
// row is left untouched; on success the caller replaces it wholesale with
// msg.Appt. There is no automatic retry.
func (d *Dispatcher) Apply(msg ActionResultMsg) {
	delete(d.inFlight, msg.ID)
}

// Busy reports whether any action is in flight.
func (d *Dispatcher) Busy() bool { return len(d.inFlight) > 0 }

// RowBusy reports whether an action for the appointment is in flight.
func (d *Dispatcher) RowBusy(id int64) bool { return d.inFlight[id] }

// ReplaceRow swaps the list entry matching the updated appointment's id.
// The server's full object replaces the row; no partial merge happens. An
// id not present in the list leaves it unchanged.
func ReplaceRow(list []salon.Appointment, updated *salon.Appointment) []salon.Appointment {
	if updated == nil {
		return list
	}
	for i := range list {
		if list[i].ID == updated.ID {
			list[i] = *updated
			break
		}
	}
	return list
}
