package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/commands/options"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/config"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/runner/list"
)

func addAppointments(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	ro := &options.RefreshOptions{}

	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appts", "ls"},
		Short:   "List appointments",
		Example: `
salon appointments
salon appointments --date 2026-09-01 --status confirmed
salon appointments --mine
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, backend, err := load()
			if err != nil {
				return err
			}
			opts, err := fo.ListOptions()
			if err != nil {
				return err
			}
			// Unfiltered listings default to the role's own scope.
			if !fo.Mine && fo.Employee == 0 && fo.Client == 0 && fo.Date == "" && fo.Status == "" {
				switch cfg.Role {
				case config.RoleClient:
					opts.Mine = true
				case config.RoleEmployee:
					opts.Employee = cfg.Employee
				}
			}

			src, err := source(cfg, backend)
			if err != nil {
				return err
			}
			lookups, err := src.Resolve(context.Background(), ro.Refresh)
			if err != nil {
				return err
			}

			l := list.List{
				ShowID:  io.ShowID,
				Opts:    opts,
				API:     backend,
				Lookups: lookups,
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddRefreshArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
