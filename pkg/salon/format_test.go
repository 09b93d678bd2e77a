package salon

import (
	"math"
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(fptr(0)); got != "0,00 zł" {
		t.Fatalf("expected 0,00 zł, got %q", got)
	}
	if got := FormatPrice(fptr(120.5)); got != "120,50 zł" {
		t.Fatalf("expected 120,50 zł, got %q", got)
	}
	if got := FormatPrice(nil); got != Placeholder {
		t.Fatalf("nil amount: expected placeholder, got %q", got)
	}
	if got := FormatPrice(fptr(math.NaN())); got != Placeholder {
		t.Fatalf("NaN: expected placeholder, got %q", got)
	}
	if got := FormatPrice(fptr(math.Inf(1))); got != Placeholder {
		t.Fatalf("Inf: expected placeholder, got %q", got)
	}
}

func TestFormatPriceString(t *testing.T) {
	if got := FormatPriceString("85.00"); got != "85,00 zł" {
		t.Fatalf("expected 85,00 zł, got %q", got)
	}
	for _, raw := range []string{"", "abc", "12,50"} {
		if got := FormatPriceString(raw); got != Placeholder {
			t.Fatalf("%q: expected placeholder, got %q", raw, got)
		}
	}
}

func TestIsPast(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	if !IsPast(now.Add(-time.Minute), now) {
		t.Fatal("one minute ago should be past")
	}
	if IsPast(now.Add(time.Minute), now) {
		t.Fatal("one minute ahead should not be past")
	}
	if IsPast(now, now) {
		t.Fatal("exactly now is not strictly past")
	}
	if IsPast(time.Time{}, now) {
		t.Fatal("zero time must not register as past")
	}
}

func TestIsPastRaw(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	if !IsPastRaw("2026-03-10T11:00:00Z", now) {
		t.Fatal("earlier timestamp should be past")
	}
	if IsPastRaw("2026-03-10T13:00:00Z", now) {
		t.Fatal("later timestamp should not be past")
	}
	for _, raw := range []string{"", "not-a-time", "2026-13-40"} {
		if IsPastRaw(raw, now) {
			t.Fatalf("%q: invalid input must report false", raw)
		}
	}
}

func TestFormatTimeRange(t *testing.T) {
	start := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	if got := FormatTimeRange(time.Time{}, end); got != Placeholder {
		t.Fatalf("zero start: expected placeholder, got %q", got)
	}
	if got := FormatTimeRange(start, time.Time{}); got == Placeholder {
		t.Fatalf("zero end should still render the start, got %q", got)
	}
}

func TestParseStatus(t *testing.T) {
	if got := ParseStatus("confirmed"); got != StatusConfirmed {
		t.Fatalf("expected confirmed, got %q", got)
	}
	if got := ParseStatus("exploded"); got != StatusUnknown {
		t.Fatalf("unknown code should map to StatusUnknown, got %q", got)
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := map[Status]bool{
		StatusPending:    false,
		StatusConfirmed:  false,
		StatusInProgress: false,
		StatusCompleted:  true,
		StatusCancelled:  true,
		StatusNoShow:     true,
	}
	for s, want := range terminal {
		if s.Terminal() != want {
			t.Fatalf("%s: Terminal() = %v, want %v", s, s.Terminal(), want)
		}
	}
}
