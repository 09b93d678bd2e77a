package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/booking"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/printers"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
)

// API is the slice of the backend client the action runner needs.
type API interface {
	GetAppointment(ctx context.Context, id int64) (*salon.Appointment, error)
	ConfirmAppointment(ctx context.Context, id int64) (*salon.Appointment, error)
	CancelAppointment(ctx context.Context, id int64, reason string) (*salon.Appointment, error)
	CompleteAppointment(ctx context.Context, id int64) (*salon.Appointment, error)
	NoShowAppointment(ctx context.Context, id int64) (*salon.Appointment, error)
}

// Action performs one status transition on an appointment. The current
// record is fetched first so the transition is checked against the
// server-computed capability flags before any state changes.
type Action struct {
	API     API
	Lookups *store.Lookups

	ID     int64
	Act    booking.Action
	Reason string

	ShowID bool
}

func (a *Action) Do(ctx context.Context) error {
	if a.API == nil {
		return errors.New("can not act, no backend")
	}

	appt, err := a.API.GetAppointment(ctx, a.ID)
	if err != nil {
		return err
	}
	if !booking.Allowed(*appt, a.Act) {
		return fmt.Errorf("appointment #%d (%s) does not allow %s",
			appt.ID, appt.Status.Label(), a.Act.Label())
	}

	var updated *salon.Appointment
	switch a.Act {
	case booking.ActionConfirm:
		updated, err = a.API.ConfirmAppointment(ctx, a.ID)
	case booking.ActionCancel:
		updated, err = a.API.CancelAppointment(ctx, a.ID, a.Reason)
	case booking.ActionComplete:
		updated, err = a.API.CompleteAppointment(ctx, a.ID)
	case booking.ActionNoShow:
		updated, err = a.API.NoShowAppointment(ctx, a.ID)
	default:
		return fmt.Errorf("unknown action %q", a.Act)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID, Lookups: a.Lookups}
	fmt.Println("")
	pp.Title(a.Act.Label())
	pp.Appointments(*updated)
	return nil
}
