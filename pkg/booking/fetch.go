package booking

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

// AvailabilityAPI is the slice of the backend client the fetcher needs.
type AvailabilityAPI interface {
	Availability(ctx context.Context, employeeID, serviceID int64, date time.Time) (*api.Availability, error)
}

// SlotsMsg carries the result of one availability fetch back into the
// event loop. Gen identifies which refresh issued the request.
type SlotsMsg struct {
	Gen   int
	Slots []salon.Slot
	Err   error
}

// SlotFetcher requests bookable slots for an (employee, service, date)
// triple and guards against out-of-order responses. Every Refresh bumps a
// generation counter captured by the outgoing request; Apply discards any
// response whose generation is no longer current, so the last-issued
// request always wins regardless of arrival order.
type SlotFetcher struct {
	api AvailabilityAPI

	gen     int
	loading bool
	errMsg  string
	slots   []salon.Slot
}

// NewSlotFetcher returns a fetcher bound to the backend client.
func NewSlotFetcher(a AvailabilityAPI) *SlotFetcher {
	return &SlotFetcher{api: a}
}

// Refresh issues a fetch for the triple. When any of the three parameters
// is unset it clears the slot set, invalidates any in-flight request, and
// performs no network action. The returned command is nil in that case.
func (f *SlotFetcher) Refresh(employeeID, serviceID int64, date time.Time) tea.Cmd {
	f.gen++
	f.errMsg = ""

	if employeeID <= 0 || serviceID <= 0 || date.IsZero() {
		f.loading = false
		f.slots = nil
		return nil
	}

	f.loading = true
	gen := f.gen
	return func() tea.Msg {
		out, err := f.api.Availability(context.Background(), employeeID, serviceID, date)
		if err != nil {
			return SlotsMsg{Gen: gen, Err: err}
		}
		return SlotsMsg{Gen: gen, Slots: out.Slots}
	}
}

// Clear drops the slot set and invalidates any in-flight request without
// issuing a new one. Used when the booking dialog closes or enters
// restricted mode.
func (f *SlotFetcher) Clear() {
	f.gen++
	f.loading = false
	f.errMsg = ""
	f.slots = nil
}

// Apply folds a fetch result into the fetcher. Stale results (an older
// generation) are discarded and Apply reports false; the caller must not
// touch dependent state for them.
func (f *SlotFetcher) Apply(msg SlotsMsg) bool {
	if msg.Gen != f.gen {
		return false
	}
	f.loading = false
	if msg.Err != nil {
		f.errMsg = api.Message(msg.Err)
		f.slots = nil
		return true
	}
	f.errMsg = ""
	f.slots = msg.Slots
	return true
}

// Loading reports whether a fetch is in flight.
func (f *SlotFetcher) Loading() bool { return f.loading }

// Err returns the user-facing message from the last failed fetch, or "".
func (f *SlotFetcher) Err() string { return f.errMsg }

// Slots returns the current slot set.
func (f *SlotFetcher) Slots() []salon.Slot { return f.slots }

// Empty reports whether the last completed fetch produced no slots.
func (f *SlotFetcher) Empty() bool {
	return !f.loading && f.errMsg == "" && len(f.slots) == 0
}

// HasStart reports whether any current slot starts at exactly the given
// instant. Slots are regenerated server-side per request, so a previously
// valid start may have vanished (for example a concurrent booking); the
// form uses this to decide whether the draft's selection survives.
func (f *SlotFetcher) HasStart(start time.Time) bool {
	if start.IsZero() {
		return false
	}
	for _, s := range f.slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}

// SlotFor returns the slot starting at the given instant, if present.
func (f *SlotFetcher) SlotFor(start time.Time) (salon.Slot, bool) {
	for _, s := range f.slots {
		if s.Start.Equal(start) {
			return s, true
		}
	}
	return salon.Slot{}, false
}
