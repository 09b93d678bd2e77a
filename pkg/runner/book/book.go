package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/booking"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/printers"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
)

// API is the slice of the backend client the booker needs.
type API interface {
	Availability(ctx context.Context, employeeID, serviceID int64, date time.Time) (*api.Availability, error)
	CreateAppointment(ctx context.Context, in api.AppointmentInput) (*salon.Appointment, error)
}

// Book creates one appointment from the command line. It runs the same
// draft controller the interactive dialog uses, so skill filtering and
// slot validation behave identically: the requested start must match a
// currently bookable window exactly.
type Book struct {
	API     API
	Lookups *store.Lookups

	Client   *int64
	Employee int64
	Service  int64
	Date     time.Time
	Start    string // "15:04", local time on Date
	Notes    string

	ShowID bool
}

func (b *Book) Do(ctx context.Context) error {
	if b.API == nil {
		return errors.New("can not book, no backend")
	}

	emp, ok := b.Lookups.Employee(b.Employee)
	if !ok {
		return fmt.Errorf("unknown employee %d", b.Employee)
	}

	form := &booking.Form{}
	form.OpenCreate(0)
	form.SetClient(b.Client)
	form.SetEmployee(emp)
	form.SetService(b.Service)
	form.SetDate(b.Date)
	form.SetNotes(b.Notes)

	if form.Draft().Service != b.Service {
		return fmt.Errorf("%s is not qualified for service %d", emp.Name(), b.Service)
	}

	employeeID, serviceID, date, ok := form.NeedsSlots()
	if !ok {
		return errors.New("booking requires --client, --employee, --service, and --date")
	}

	want, err := b.wantedStart()
	if err != nil {
		return err
	}

	out, err := b.API.Availability(ctx, employeeID, serviceID, date)
	if err != nil {
		return err
	}
	slot, ok := findSlot(out.Slots, want)
	if !ok {
		return fmt.Errorf("no bookable slot at %s; run `salon slots` to see what is open", b.Start)
	}
	form.SelectSlot(slot)

	if !form.CanSubmit(false, false) {
		return errors.New("booking requires --client, --employee, --service, --date, and --start")
	}
	form.BeginSubmit()

	appt, err := b.API.CreateAppointment(ctx, form.Payload())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: b.ShowID, Lookups: b.Lookups}
	fmt.Println("")
	pp.Title("Booked")
	pp.Appointments(*appt)
	return nil
}

// wantedStart combines Date with the requested clock time.
func (b *Book) wantedStart() (time.Time, error) {
	clock, err := time.ParseInLocation("15:04", b.Start, b.Date.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("start must look like 15:04: %w", err)
	}
	y, mo, d := b.Date.Date()
	return time.Date(y, mo, d, clock.Hour(), clock.Minute(), 0, 0, b.Date.Location()), nil
}

func findSlot(slots []salon.Slot, want time.Time) (salon.Slot, bool) {
	for _, s := range slots {
		if s.Start.Equal(want) {
			return s, true
		}
	}
	return salon.Slot{}, false
}
