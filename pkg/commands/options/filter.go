package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

// FilterOptions narrow the appointments listing.
type FilterOptions struct {
	Mine     bool
	Employee int64
	Client   int64
	Date     string
	Status   string
}

func AddFilterArgs(cmd *cobra.Command, fo *FilterOptions) {
	cmd.Flags().BoolVar(&fo.Mine, "mine", false,
		"Only the authenticated user's appointments.")
	cmd.Flags().Int64Var(&fo.Employee, "employee", 0,
		"Filter by employee id.")
	cmd.Flags().Int64Var(&fo.Client, "client", 0,
		"Filter by client id.")
	cmd.Flags().StringVar(&fo.Date, "date", "",
		"Filter to one day (YYYY-MM-DD).")
	cmd.Flags().StringVar(&fo.Status, "status", "",
		"Filter by status (pending, confirmed, in_progress, completed, cancelled, no_show).")
}

// ListOptions converts the flags into an API filter.
func (fo *FilterOptions) ListOptions() (api.ListOptions, error) {
	opts := api.ListOptions{
		Mine:     fo.Mine,
		Employee: fo.Employee,
		Client:   fo.Client,
	}
	if fo.Date != "" {
		d, err := time.ParseInLocation(salon.DateLayout, fo.Date, time.Local)
		if err != nil {
			return opts, fmt.Errorf("date must look like %s: %w", salon.DateLayout, err)
		}
		opts.Date = d
	}
	if fo.Status != "" {
		s := salon.ParseStatus(fo.Status)
		if s == salon.StatusUnknown {
			return opts, fmt.Errorf("unknown status %q", fo.Status)
		}
		opts.Status = s
	}
	return opts, nil
}
