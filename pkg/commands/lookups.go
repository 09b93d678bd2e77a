package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/commands/options"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/runner/lookups"
)

func addLookups(topLevel *cobra.Command) {
	addLookup(topLevel, lookups.KindClients, "List the client book")
	addLookup(topLevel, lookups.KindEmployees, "List employees and their skills")
	addLookup(topLevel, lookups.KindServices, "List the service catalog")
}

func addLookup(topLevel *cobra.Command, kind, short string) {
	ro := &options.RefreshOptions{}

	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Example: `
salon ` + kind + `
salon ` + kind + ` --refresh
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, backend, err := load()
			if err != nil {
				return err
			}
			src, err := source(cfg, backend)
			if err != nil {
				return err
			}
			l := lookups.Lookups{
				Source:  src,
				Kind:    kind,
				Refresh: ro.Refresh,
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddRefreshArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
