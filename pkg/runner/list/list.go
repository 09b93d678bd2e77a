package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/printers"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
)

// API is the slice of the backend client the lister needs.
type API interface {
	AllAppointments(ctx context.Context, opts api.ListOptions) ([]salon.Appointment, error)
}

// List fetches and prints appointments.
type List struct {
	ShowID  bool
	Opts    api.ListOptions
	API     API
	Lookups *store.Lookups
}

func (l *List) Do(ctx context.Context) error {
	if l.API == nil {
		return errors.New("can not list, no backend")
	}

	appts, err := l.API.AllAppointments(ctx, l.Opts)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID, Lookups: l.Lookups}
	fmt.Println("")
	pp.TitleWithCount("Appointments", len(appts))
	pp.Appointments(appts...)
	return nil
}
