package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

const availabilityPath = "/api/availability/"

// Availability is the slot set the backend computed for one
// (employee, service, date) query. Slots are regenerated per request and
// carry no identity; the previous set is always replaced wholesale.
type Availability struct {
	Date  string       `json:"date"`
	Slots []salon.Slot `json:"slots"`
}

// Availability fetches bookable slots for an employee performing a service
// on a given day. The caller is responsible for only asking with all three
// parameters present; the booking layer enforces that before any request
// is issued.
func (c *Client) Availability(ctx context.Context, employeeID, serviceID int64, date time.Time) (*Availability, error) {
	q := url.Values{}
	q.Set("employee", fmt.Sprint(employeeID))
	q.Set("service", fmt.Sprint(serviceID))
	q.Set("date", date.Format(salon.DateLayout))

	var out Availability
	if err := c.do(ctx, http.MethodGet, availabilityPath, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
