package salon

// Status is the lifecycle state of an appointment as reported by the
// backend. The client never decides transitions itself; it renders the
// status and reflects the capability flags the server computed.
type Status string

const (
	StatusUnknown    Status = ""
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// ParseStatus maps a raw status code to a Status. Unrecognized codes come
// back as StatusUnknown rather than an error so a newer backend cannot
// break list rendering.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return Status(raw)
	}
	return StatusUnknown
}

// Label returns the display string for the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	case StatusNoShow:
		return "No-show"
	}
	return "Unknown"
}

// Terminal reports whether the status blocks further mutation. Past
// appointments in a terminal state only ever accept notes edits.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Symbol returns a one-rune marker used in table listings and the legend.
func (s Status) Symbol() string {
	switch s {
	case StatusPending:
		return "◌"
	case StatusConfirmed:
		return "●"
	case StatusInProgress:
		return "◍"
	case StatusCompleted:
		return "✔"
	case StatusCancelled:
		return "✘"
	case StatusNoShow:
		return "⊘"
	}
	return "?"
}

// AllStatuses lists every known status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
		StatusNoShow,
	}
}
