package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/runner/slots"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

func addSlots(topLevel *cobra.Command) {
	var employee, service int64
	var date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List open booking slots for an employee, service, and day",
		Example: `
salon slots --employee 2 --service 4 --date 2026-09-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.ParseInLocation(salon.DateLayout, date, time.Local)
			if err != nil {
				return fmt.Errorf("date must look like %s: %w", salon.DateLayout, err)
			}
			_, backend, err := load()
			if err != nil {
				return err
			}
			s := slots.Slots{
				API:      backend,
				Employee: employee,
				Service:  service,
				Date:     d,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().Int64Var(&employee, "employee", 0, "Employee id.")
	cmd.Flags().Int64Var(&service, "service", 0, "Service id.")
	cmd.Flags().StringVar(&date, "date", "", "Day to query (YYYY-MM-DD).")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("date")

	topLevel.AddCommand(cmd)
}
