package booking

import (
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

// Phase is the dialog session state.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseEditing
	PhaseSubmitting
)

// Mode distinguishes creating a new appointment from editing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Draft is the client-local, unpersisted form state. It is discarded on
// dialog close and on successful submit; nothing here ever reaches disk.
type Draft struct {
	Client   *int64
	Employee int64
	Service  int64
	Date     time.Time
	Start    time.Time
	End      time.Time
	Notes    string
}

// Form owns the draft appointment edited in the create/edit dialog,
// derives field editability, and validates submit readiness. In restricted
// mode (editing an appointment whose start is already past) only the notes
// field is mutable and the source values are preserved verbatim on submit.
type Form struct {
	phase      Phase
	mode       Mode
	restricted bool
	source     *salon.Appointment
	draft      Draft
	errMsg     string
}

// OpenCreate starts a blank create session. In the employee-facing flow
// the acting employee is pre-bound; pass zero otherwise.
func (f *Form) OpenCreate(actingEmployee int64) {
	*f = Form{
		phase: PhaseEditing,
		mode:  ModeCreate,
		draft: Draft{Employee: actingEmployee},
	}
}

// OpenEdit starts an edit session populated from the appointment. When the
// appointment's start is already in the past the session is restricted:
// everything but the notes field is frozen.
func (f *Form) OpenEdit(appt salon.Appointment, now time.Time) {
	src := appt
	*f = Form{
		phase:      PhaseEditing,
		mode:       ModeEdit,
		restricted: salon.IsPast(appt.Start, now),
		source:     &src,
		draft: Draft{
			Client:   appt.Client,
			Employee: appt.Employee,
			Service:  appt.Service,
			Date:     appt.Start,
			Start:    appt.Start,
			End:      appt.End,
			Notes:    appt.InternalNotes,
		},
	}
}

// Close discards the draft.
func (f *Form) Close() { *f = Form{} }

// Phase returns the current dialog phase.
func (f *Form) Phase() Phase { return f.phase }

// Mode returns create or edit.
func (f *Form) Mode() Mode { return f.mode }

// Restricted reports whether only the notes field is editable.
func (f *Form) Restricted() bool { return f.restricted }

// Open reports whether a dialog session is active.
func (f *Form) Open() bool { return f.phase != PhaseClosed }

// Draft returns a copy of the in-flight selections.
func (f *Form) Draft() Draft { return f.draft }

// Source returns the appointment an edit session started from, or nil.
func (f *Form) Source() *salon.Appointment { return f.source }

// Err returns the inline error from the last failed submit, or "".
func (f *Form) Err() string { return f.errMsg }

// SetClient updates the client selection. Frozen in restricted mode.
func (f *Form) SetClient(id *int64) {
	if f.phase != PhaseEditing || f.restricted {
		return
	}
	f.draft.Client = id
}

// SetEmployee switches the employee. When the currently selected service
// is not in the new employee's skill set, the service and the dependent
// slot selection are cleared. In restricted mode nothing is ever
// auto-cleared.
func (f *Form) SetEmployee(emp salon.Employee) {
	if f.phase != PhaseEditing || f.restricted {
		return
	}
	f.draft.Employee = emp.ID
	if f.draft.Service != 0 && !emp.HasSkill(f.draft.Service) {
		f.draft.Service = 0
		f.clearSlot()
	}
}

// SetService switches the service and clears the dependent slot selection;
// the new service's slots are a different set entirely.
func (f *Form) SetService(id int64) {
	if f.phase != PhaseEditing || f.restricted {
		return
	}
	if f.draft.Service == id {
		return
	}
	f.draft.Service = id
	f.clearSlot()
}

// SetDate moves the booking day and clears the slot selection.
func (f *Form) SetDate(date time.Time) {
	if f.phase != PhaseEditing || f.restricted {
		return
	}
	f.draft.Date = date
	f.clearSlot()
}

// SelectSlot adopts a fetched slot as the draft time window.
func (f *Form) SelectSlot(s salon.Slot) {
	if f.phase != PhaseEditing || f.restricted {
		return
	}
	f.draft.Start = s.Start
	f.draft.End = s.End
}

// SetNotes updates the internal notes. This is the one field that stays
// mutable in restricted mode.
func (f *Form) SetNotes(notes string) {
	if f.phase != PhaseEditing {
		return
	}
	f.draft.Notes = notes
}

// NeedsSlots reports whether the slot fetcher should run, and for which
// triple. Restricted sessions never fetch: past appointments are immutable
// except for notes. An incomplete triple also performs no fetch.
func (f *Form) NeedsSlots() (employeeID, serviceID int64, date time.Time, ok bool) {
	if f.phase != PhaseEditing || f.restricted {
		return 0, 0, time.Time{}, false
	}
	d := f.draft
	if d.Employee <= 0 || d.Service <= 0 || d.Date.IsZero() {
		return 0, 0, time.Time{}, false
	}
	return d.Employee, d.Service, d.Date, true
}

// ReconcileSlots checks the draft's selected start against a freshly
// fetched slot set. When the start no longer exactly matches any slot the
// selection is cleared, both start and end, and ReconcileSlots reports
// true. This is the consistency guard for server-side slot regeneration.
func (f *Form) ReconcileSlots(fetcher *SlotFetcher) (cleared bool) {
	if f.restricted || f.draft.Start.IsZero() {
		return false
	}
	if fetcher.HasStart(f.draft.Start) {
		return false
	}
	f.clearSlot()
	return true
}

// SlotFetchFailed clears the dependent time selection after a failed slot
// fetch. The dialog stays open and operable.
func (f *Form) SlotFetchFailed() {
	if f.restricted {
		return
	}
	f.clearSlot()
}

func (f *Form) clearSlot() {
	f.draft.Start = time.Time{}
	f.draft.End = time.Time{}
}

// CanSubmit is the submit gate. Submission is blocked while submitting,
// while lookups or slots are loading, and whenever the employee is unset.
// Unrestricted sessions additionally need client, service, start, and end.
// Restricted sessions are submittable once the gate's loading conditions
// clear: the notes-only edit needs nothing else.
func (f *Form) CanSubmit(lookupsLoading, slotsLoading bool) bool {
	if f.phase == PhaseSubmitting || f.phase == PhaseClosed {
		return false
	}
	if lookupsLoading || slotsLoading {
		return false
	}
	if f.draft.Employee <= 0 {
		return false
	}
	if f.restricted {
		return true
	}
	d := f.draft
	return d.Client != nil && d.Service > 0 && !d.Start.IsZero() && !d.End.IsZero()
}

// Payload builds the create/update request. Restricted sessions preserve
// every source field verbatim and carry only the edited notes.
func (f *Form) Payload() api.AppointmentInput {
	if f.restricted && f.source != nil {
		src := f.source
		return api.AppointmentInput{
			Client:        src.Client,
			Employee:      src.Employee,
			Service:       src.Service,
			Start:         src.Start.Format(time.RFC3339),
			End:           src.End.Format(time.RFC3339),
			Status:        src.Status,
			InternalNotes: f.draft.Notes,
		}
	}

	in := api.AppointmentInput{
		Client:        f.draft.Client,
		Employee:      f.draft.Employee,
		Service:       f.draft.Service,
		Start:         f.draft.Start.Format(time.RFC3339),
		End:           f.draft.End.Format(time.RFC3339),
		InternalNotes: f.draft.Notes,
	}
	if f.mode == ModeEdit && f.source != nil {
		in.Status = f.source.Status
	}
	return in
}

// BeginSubmit moves the session into the submitting phase.
func (f *Form) BeginSubmit() {
	if f.phase == PhaseEditing {
		f.phase = PhaseSubmitting
		f.errMsg = ""
	}
}

// FailSubmit returns to editing with the server's message surfaced inline.
// All entered data is preserved.
func (f *Form) FailSubmit(msg string) {
	if f.phase == PhaseSubmitting {
		f.phase = PhaseEditing
		f.errMsg = msg
	}
}

// FinishSubmit closes the dialog after a successful submit; the caller
// triggers the list reload.
func (f *Form) FinishSubmit() { f.Close() }
