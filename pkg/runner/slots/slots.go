package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/printers"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

// API is the slice of the backend client the slot lister needs.
type API interface {
	Availability(ctx context.Context, employeeID, serviceID int64, date time.Time) (*api.Availability, error)
}

// Slots fetches and prints the bookable windows for one employee,
// service, and day.
type Slots struct {
	API      API
	Employee int64
	Service  int64
	Date     time.Time
}

func (s *Slots) Do(ctx context.Context) error {
	if s.API == nil {
		return errors.New("can not list slots, no backend")
	}
	if s.Employee <= 0 || s.Service <= 0 || s.Date.IsZero() {
		return errors.New("slots require --employee, --service, and --date")
	}

	out, err := s.API.Availability(ctx, s.Employee, s.Service, s.Date)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Slots(s.Date.Format(salon.DateLayout), out.Slots)
	return nil
}
