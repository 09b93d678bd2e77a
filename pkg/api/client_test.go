package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

func TestExtractMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail", `{"detail": "Appointment is no longer available."}`, "Appointment is no longer available."},
		{"field errors", `{"start": ["This slot is taken."], "client": ["Required."]}`, "client: Required.; start: This slot is taken."},
		{"field string", `{"service": "Unknown service."}`, "service: Unknown service."},
		{"plain string", `"backend is on fire"`, "backend is on fire"},
		{"string array", `["first", "second"]`, "first second"},
		{"empty", ``, genericMessage},
		{"null", `null`, genericMessage},
		{"number", `42`, genericMessage},
		{"not json", `<html>oops</html>`, genericMessage},
		{"empty object", `{}`, genericMessage},
	}
	for _, tc := range cases {
		if got := extractMessage([]byte(tc.body)); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestErrorSentinels(t *testing.T) {
	notFound := &Error{StatusCode: http.StatusNotFound, Message: "Not found."}
	if !errors.Is(notFound, ErrNotFound) {
		t.Fatal("404 should unwrap to ErrNotFound")
	}
	invalid := &Error{StatusCode: http.StatusBadRequest, Message: "start: taken"}
	if !errors.Is(invalid, ErrValidation) {
		t.Fatal("400 should unwrap to ErrValidation")
	}
	if Message(invalid) != "start: taken" {
		t.Fatalf("Message should surface the extracted text, got %q", Message(invalid))
	}
	if Message(errors.New("boom")) != genericMessage {
		t.Fatal("unknown errors must degrade to the generic message")
	}
}

func TestAvailabilityQuery(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"employee": r.URL.Query().Get("employee"),
			"service":  r.URL.Query().Get("service"),
			"date":     r.URL.Query().Get("date"),
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sekret" {
			t.Errorf("missing bearer token, got %q", got)
		}
		fmt.Fprint(w, `{"date":"2026-03-10","slots":[{"start":"2026-03-10T10:00:00Z","end":"2026-03-10T10:45:00Z"}]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "sekret")
	out, err := c.Availability(context.Background(), 7, 3, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery["employee"] != "7" || gotQuery["service"] != "3" || gotQuery["date"] != "2026-03-10" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if len(out.Slots) != 1 {
		t.Fatalf("expected one slot, got %d", len(out.Slots))
	}
	if out.Slots[0].Start.Format(time.RFC3339) != "2026-03-10T10:00:00Z" {
		t.Fatalf("unexpected slot start: %v", out.Slots[0].Start)
	}
}

func TestListEmployeesWalksPages(t *testing.T) {
	var baseURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprintf(w, `{"count":3,"next":"%s/api/employees/?page=2","previous":null,"results":[{"id":1,"first_name":"Anna","last_name":"Lis","skills":[1,2],"is_active":true},{"id":2,"first_name":"Ewa","last_name":"Kot","skills":[2],"is_active":true}]}`, baseURL)
		case "2":
			fmt.Fprint(w, `{"count":3,"next":null,"previous":null,"results":[{"id":3,"first_name":"Jan","last_name":"Nowak","skills":[],"is_active":false}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	baseURL = srv.URL

	c := New(srv.URL, "")
	employees, err := c.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(employees) != 3 {
		t.Fatalf("expected 3 employees across pages, got %d", len(employees))
	}
	if !employees[0].HasSkill(2) {
		t.Fatal("Anna should have skill 2")
	}
	if employees[2].HasSkill(1) {
		t.Fatal("Jan has no skills")
	}
}

func TestActionReturnsFullAppointment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/appointments/42/confirm/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"id":42,"employee":7,"service":3,"start":"2026-03-10T10:00:00Z","end":"2026-03-10T10:45:00Z","status":"confirmed","can_confirm":false,"can_cancel":true,"can_complete":false,"can_no_show":false}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	appt, err := c.ConfirmAppointment(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != salon.StatusConfirmed {
		t.Fatalf("expected confirmed, got %q", appt.Status)
	}
	if appt.CanConfirm || !appt.CanCancel {
		t.Fatalf("capability flags not decoded: %+v", appt.Capabilities)
	}
}

func TestErrorBodyBecomesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"start": ["Slot already booked."]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.CreateAppointment(context.Background(), AppointmentInput{Employee: 1, Service: 2})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if Message(err) != "start: Slot already booked." {
		t.Fatalf("unexpected message: %q", Message(err))
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, "")
	_, err := c.GetAppointment(context.Background(), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
