package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

// BookOptions collect the fields of a new appointment.
type BookOptions struct {
	Client   int64
	Employee int64
	Service  int64
	Date     string
	Start    string
	Notes    string
}

func AddBookArgs(cmd *cobra.Command, bo *BookOptions) {
	cmd.Flags().Int64Var(&bo.Client, "client", 0,
		"Client id to book for.")
	cmd.Flags().Int64Var(&bo.Employee, "employee", 0,
		"Employee id performing the service.")
	cmd.Flags().Int64Var(&bo.Service, "service", 0,
		"Service id to book.")
	cmd.Flags().StringVar(&bo.Date, "date", "",
		"Appointment day (YYYY-MM-DD).")
	cmd.Flags().StringVar(&bo.Start, "start", "",
		"Slot start time (15:04). Must match an open slot exactly.")
	cmd.Flags().StringVar(&bo.Notes, "notes", "",
		"Internal notes.")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
}

// ParseDate returns the appointment day in local time.
func (bo *BookOptions) ParseDate() (time.Time, error) {
	d, err := time.ParseInLocation(salon.DateLayout, bo.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must look like %s: %w", salon.DateLayout, err)
	}
	return d, nil
}
