package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

const appointmentsPath = "/api/appointments/"

// AppointmentInput is the create/update payload. Start and End carry
// RFC 3339 strings because the backend echoes exactly what the slot fetch
// returned; re-encoding through time.Time must not change the wire form.
type AppointmentInput struct {
	Client        *int64       `json:"client,omitempty"`
	Employee      int64        `json:"employee"`
	Service       int64        `json:"service"`
	Start         string       `json:"start"`
	End           string       `json:"end"`
	Status        salon.Status `json:"status,omitempty"`
	InternalNotes string       `json:"internal_notes"`
}

// ListOptions filter the appointments list.
type ListOptions struct {
	// Mine restricts the list to the authenticated user's appointments.
	Mine bool
	// Employee filters by employee id when > 0.
	Employee int64
	// Client filters by client id when > 0.
	Client int64
	// Date filters to one calendar day when non-zero.
	Date time.Time
	// Status filters by lifecycle state when set.
	Status salon.Status
	// Page selects one page of the envelope; zero means the first.
	Page int
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Mine {
		q.Set("mine", "true")
	}
	if o.Employee > 0 {
		q.Set("employee", fmt.Sprint(o.Employee))
	}
	if o.Client > 0 {
		q.Set("client", fmt.Sprint(o.Client))
	}
	if !o.Date.IsZero() {
		q.Set("date", o.Date.Format(salon.DateLayout))
	}
	if o.Status != salon.StatusUnknown {
		q.Set("status", string(o.Status))
	}
	if o.Page > 1 {
		q.Set("page", fmt.Sprint(o.Page))
	}
	return q
}

// ListAppointments fetches one page of appointments.
func (c *Client) ListAppointments(ctx context.Context, opts ListOptions) (*Page[salon.Appointment], error) {
	var env Page[salon.Appointment]
	if err := c.do(ctx, http.MethodGet, appointmentsPath, opts.query(), nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// AllAppointments walks every page of the filtered list.
func (c *Client) AllAppointments(ctx context.Context, opts ListOptions) ([]salon.Appointment, error) {
	return getAll[salon.Appointment](ctx, c, appointmentsPath, opts.query())
}

// GetAppointment fetches one appointment with its current capability flags.
func (c *Client) GetAppointment(ctx context.Context, id int64) (*salon.Appointment, error) {
	var appt salon.Appointment
	path := fmt.Sprintf("%s%d/", appointmentsPath, id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// CreateAppointment books a new appointment and returns the server's copy.
func (c *Client) CreateAppointment(ctx context.Context, in AppointmentInput) (*salon.Appointment, error) {
	var appt salon.Appointment
	if err := c.do(ctx, http.MethodPost, appointmentsPath, nil, in, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateAppointment patches an existing appointment and returns the
// server's updated copy.
func (c *Client) UpdateAppointment(ctx context.Context, id int64, in AppointmentInput) (*salon.Appointment, error) {
	var appt salon.Appointment
	path := fmt.Sprintf("%s%d/", appointmentsPath, id)
	if err := c.do(ctx, http.MethodPatch, path, nil, in, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// action posts to one of the transition endpoints. Each returns the full
// updated appointment; the caller replaces its local row wholesale.
func (c *Client) action(ctx context.Context, id int64, verb string, payload interface{}) (*salon.Appointment, error) {
	var appt salon.Appointment
	path := fmt.Sprintf("%s%d/%s/", appointmentsPath, id, verb)
	if err := c.do(ctx, http.MethodPost, path, nil, payload, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// ConfirmAppointment transitions pending → confirmed.
func (c *Client) ConfirmAppointment(ctx context.Context, id int64) (*salon.Appointment, error) {
	return c.action(ctx, id, "confirm", nil)
}

// CancelAppointment cancels an appointment with an optional reason.
func (c *Client) CancelAppointment(ctx context.Context, id int64, reason string) (*salon.Appointment, error) {
	var payload interface{}
	if reason != "" {
		payload = map[string]string{"reason": reason}
	}
	return c.action(ctx, id, "cancel", payload)
}

// CompleteAppointment transitions in_progress → completed.
func (c *Client) CompleteAppointment(ctx context.Context, id int64) (*salon.Appointment, error) {
	return c.action(ctx, id, "complete", nil)
}

// NoShowAppointment marks the client as a no-show.
func (c *Client) NoShowAppointment(ctx context.Context, id int64) (*salon.Appointment, error) {
	return c.action(ctx, id, "no-show", nil)
}
