package slotpicker

import (
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/theme"
)

// maxVisible caps how many slots render before the list scrolls.
const maxVisible = 6

// Model renders the bookable slots for the current (employee, service,
// date) triple and tracks the highlighted row. The slot data itself is
// owned by the booking fetcher; the picker is handed a fresh copy after
// every fetch.
type Model struct {
	th theme.Theme

	loading bool
	errMsg  string
	slots   []salon.Slot
	index   int
	offset  int
}

// New returns an empty picker.
func New(th theme.Theme) *Model {
	return &Model{th: th}
}

// SetLoading toggles the in-flight indicator.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
	if loading {
		m.errMsg = ""
	}
}

// SetSlots replaces the slot list wholesale and clamps the cursor.
func (m *Model) SetSlots(slots []salon.Slot) {
	m.loading = false
	m.errMsg = ""
	m.slots = slots
	if m.index >= len(slots) {
		m.index = 0
		m.offset = 0
	}
}

// SetError switches the picker into its error state.
func (m *Model) SetError(msg string) {
	m.loading = false
	m.errMsg = msg
	m.slots = nil
	m.index = 0
	m.offset = 0
}

// Move shifts the highlight by delta, clamped to the list.
func (m *Model) Move(delta int) {
	if len(m.slots) == 0 {
		return
	}
	m.index += delta
	if m.index < 0 {
		m.index = 0
	}
	if m.index >= len(m.slots) {
		m.index = len(m.slots) - 1
	}
	if m.index < m.offset {
		m.offset = m.index
	}
	if m.index >= m.offset+maxVisible {
		m.offset = m.index - maxVisible + 1
	}
}

// Current returns the highlighted slot.
func (m *Model) Current() (salon.Slot, bool) {
	if m.index < 0 || m.index >= len(m.slots) {
		return salon.Slot{}, false
	}
	return m.slots[m.index], true
}

// AlignTo moves the highlight to the slot starting at the given instant,
// if it is present.
func (m *Model) AlignTo(start time.Time) {
	for i, s := range m.slots {
		if s.Start.Equal(start) {
			m.index = i
			if m.index < m.offset || m.index >= m.offset+maxVisible {
				m.offset = m.index
			}
			return
		}
	}
}

// View renders the picker. selected marks the draft's chosen start so the
// active slot keeps its marker even when the highlight moves.
func (m *Model) View(focused bool, selected time.Time) string {
	if m.loading {
		return m.th.Faint.Render("fetching slots…")
	}
	if m.errMsg != "" {
		return m.th.Error.Render(m.errMsg)
	}
	if len(m.slots) == 0 {
		return m.th.Faint.Render("no available slots")
	}

	end := m.offset + maxVisible
	if end > len(m.slots) {
		end = len(m.slots)
	}

	lines := make([]string, 0, maxVisible+1)
	for i := m.offset; i < end; i++ {
		s := m.slots[i]
		marker := "○"
		if !selected.IsZero() && s.Start.Equal(selected) {
			marker = "●"
		}
		line := marker + " " + salon.FormatTimeRange(s.Start, s.End)
		switch {
		case focused && i == m.index:
			line = m.th.Selected.Render(line)
		case !selected.IsZero() && s.Start.Equal(selected):
			line = m.th.Success.Render(line)
		}
		lines = append(lines, line)
	}
	if end < len(m.slots) || m.offset > 0 {
		lines = append(lines, m.th.Faint.Render("…"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
