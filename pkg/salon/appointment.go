package salon

import "time"

// Capabilities are the server-computed permission flags on an appointment.
// The backend owns transition policy (buffer windows, role rules); the
// client only reflects these booleans and must never re-derive them from
// the status code.
type Capabilities struct {
	CanConfirm  bool `json:"can_confirm"`
	CanCancel   bool `json:"can_cancel"`
	CanComplete bool `json:"can_complete"`
	CanNoShow   bool `json:"can_no_show"`
}

// Cancellation records who cancelled an appointment, when, and why.
type Cancellation struct {
	By     string     `json:"cancelled_by,omitempty"`
	At     *time.Time `json:"cancelled_at,omitempty"`
	Reason string     `json:"cancellation_reason,omitempty"`
}

// Appointment is the client's in-memory copy of a backend appointment.
// It is created on list/detail fetch and overwritten wholesale after every
// mutating action; there is no partial merge.
type Appointment struct {
	ID int64 `json:"id"`

	// Client is nullable: list endpoints for the client role omit other
	// people's client references.
	Client   *int64 `json:"client"`
	Employee int64  `json:"employee"`
	Service  int64  `json:"service"`

	ClientName   string `json:"client_name,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	ServiceName  string `json:"service_name,omitempty"`

	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Status Status `json:"status"`
	Capabilities

	ClientNotes   string `json:"client_notes,omitempty"`
	InternalNotes string `json:"internal_notes,omitempty"`

	Cancellation

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Slot is a server-computed bookable window for one (employee, service,
// date) query. Slots have no identity and no client-side persistence: every
// availability fetch replaces the previous set entirely.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Client is a salon customer record as the lookup endpoint returns it.
type Client struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Name returns the display name for the client.
func (c Client) Name() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Employee is a salon staff record. Skills holds the IDs of the services
// the employee is qualified to perform; the booking form filters its
// service options with it.
type Employee struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role,omitempty"`
	Skills    []int64 `json:"skills"`
	Active    bool    `json:"is_active"`
}

// Name returns the display name for the employee.
func (e Employee) Name() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// HasSkill reports whether the employee is qualified for the service.
func (e Employee) HasSkill(serviceID int64) bool {
	for _, id := range e.Skills {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Service is a bookable salon service. Price arrives as a decimal string
// exactly as the backend serializes it.
type Service struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"duration_minutes"`
	Price       string `json:"price"`
	Active      bool   `json:"is_active"`
}
