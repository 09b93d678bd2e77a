package salon

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// Placeholder is rendered wherever a value is missing or unparseable.
	Placeholder = "—"

	// DateLayout is the wire format for availability queries.
	DateLayout = "2006-01-02"

	layoutDisplayDate = "Mon, 2 Jan 2006"
	layoutDisplayTime = "15:04"
)

// FormatPrice renders an amount in PLN with a comma decimal separator,
// for example "120,00 zł". A nil pointer or a non-finite value yields the
// placeholder instead of a bogus number.
func FormatPrice(amount *float64) string {
	if amount == nil {
		return Placeholder
	}
	v := *amount
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.Replace(s, ".", ",", 1)
	return s + " zł"
}

// FormatPriceString renders a backend decimal string ("120.00") as a PLN
// price. Empty or unparseable input yields the placeholder.
func FormatPriceString(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Placeholder
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Placeholder
	}
	return FormatPrice(&v)
}

// ParseTime parses an RFC 3339 timestamp as the backend emits them.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// IsPast reports whether t is strictly before now. The zero time reports
// false so missing or unparseable timestamps never register as past.
func IsPast(t time.Time, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.Before(now)
}

// IsPastRaw parses an RFC 3339 timestamp and applies IsPast. Invalid input
// reports false rather than an error; callers treat it as "not past".
func IsPastRaw(raw string, now time.Time) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	t, err := ParseTime(raw)
	if err != nil {
		return false
	}
	return IsPast(t, now)
}

// FormatDate renders a timestamp as a short display date, or the
// placeholder for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Local().Format(layoutDisplayDate)
}

// FormatTimeRange renders "15:00 – 15:45" for a start/end pair. A zero
// start yields the placeholder; a zero end renders only the start.
func FormatTimeRange(start, end time.Time) string {
	if start.IsZero() {
		return Placeholder
	}
	if end.IsZero() {
		return start.Local().Format(layoutDisplayTime)
	}
	return fmt.Sprintf("%s – %s",
		start.Local().Format(layoutDisplayTime),
		end.Local().Format(layoutDisplayTime))
}

// SameDay reports whether two timestamps fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
