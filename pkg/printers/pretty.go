package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
)

// PrettyPrint renders salon records as colorized terminal tables.
type PrettyPrint struct {
	ShowID  bool
	Lookups *store.Lookups
}

func statusColor(s salon.Status) *color.Color {
	switch s {
	case salon.StatusPending:
		return color.New(color.FgYellow)
	case salon.StatusConfirmed:
		return color.New(color.FgGreen)
	case salon.StatusInProgress:
		return color.New(color.FgCyan)
	case salon.StatusCompleted:
		return color.New(color.FgHiBlack)
	case salon.StatusCancelled:
		return color.New(color.FgRed)
	case salon.StatusNoShow:
		return color.New(color.FgMagenta)
	}
	return color.New(color.Faint)
}

// Title prints a bold underlined section title.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// TitleWithCount prints a title with a faint record count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Fprint(color.Output, title)
	switch count {
	case 1:
		_, _ = c.Fprintln(color.Output, " - 1 record")
	default:
		_, _ = c.Fprintf(color.Output, " - %d records\n", count)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(color.Output, " none\n\n")
}

// Appointments renders an appointment table. Names come from the list
// payload when the backend denormalized them and from the lookup snapshot
// otherwise.
func (pp *PrettyPrint) Appointments(appts ...salon.Appointment) {
	if len(appts) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "", "STATUS", "DATE", "TIME", "CLIENT", "EMPLOYEE", "SERVICE")
	} else {
		tbl.AddRow("", "STATUS", "DATE", "TIME", "CLIENT", "EMPLOYEE", "SERVICE")
	}

	for _, a := range appts {
		sc := statusColor(a.Status)
		cols := []interface{}{
			sc.Sprint(a.Status.Symbol()),
			sc.Sprint(a.Status.Label()),
			salon.FormatDate(a.Start),
			salon.FormatTimeRange(a.Start, a.End),
			pp.clientName(a),
			pp.employeeName(a),
			pp.serviceName(a),
		}
		if pp.ShowID {
			cols = append([]interface{}{a.ID}, cols...)
		}
		tbl.AddRow(cols...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) clientName(a salon.Appointment) string {
	if a.ClientName != "" {
		return a.ClientName
	}
	return pp.Lookups.ClientName(a.Client)
}

func (pp *PrettyPrint) employeeName(a salon.Appointment) string {
	if a.EmployeeName != "" {
		return a.EmployeeName
	}
	return pp.Lookups.EmployeeName(a.Employee)
}

func (pp *PrettyPrint) serviceName(a salon.Appointment) string {
	if a.ServiceName != "" {
		return a.ServiceName
	}
	return pp.Lookups.ServiceName(a.Service)
}

// Slots renders an availability listing for one day.
func (pp *PrettyPrint) Slots(date string, slots []salon.Slot) {
	pp.Title(date)
	if len(slots) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " no available slots\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range slots {
		tbl.AddRow("○", salon.FormatTimeRange(s.Start, s.End))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Clients renders the client book.
func (pp *PrettyPrint) Clients(clients []salon.Client) {
	if len(clients) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "NAME", "EMAIL", "PHONE")
	for _, c := range clients {
		tbl.AddRow(c.ID, c.Name(), orPlaceholder(c.Email), orPlaceholder(c.Phone))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Employees renders the staff list with resolved skill names.
func (pp *PrettyPrint) Employees(employees []salon.Employee) {
	if len(employees) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "NAME", "ROLE", "SKILLS")
	for _, e := range employees {
		names := make([]string, 0, len(e.Skills))
		for _, id := range e.Skills {
			names = append(names, pp.Lookups.ServiceName(id))
		}
		tbl.AddRow(e.ID, e.Name(), orPlaceholder(e.Role), orPlaceholder(strings.Join(names, ", ")))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Services renders the service catalog with formatted prices.
func (pp *PrettyPrint) Services(services []salon.Service) {
	if len(services) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "SERVICE", "DURATION", "PRICE")
	for _, s := range services {
		tbl.AddRow(s.ID, s.Name, fmt.Sprintf("%d min", s.DurationMin), salon.FormatPriceString(s.Price))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Key renders the status legend.
func (pp *PrettyPrint) Key() {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(color.Output, "Appointment statuses")

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range salon.AllStatuses() {
		sc := statusColor(s)
		note := ""
		if s.Terminal() {
			note = "terminal"
		}
		tbl.AddRow(sc.Sprint(s.Symbol()), s.Label(), note)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return salon.Placeholder
	}
	return v
}
