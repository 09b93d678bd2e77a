package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/config"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the text-based user interface",
		Example: `
salon ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			i := ui.UI{Cfg: *cfg}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
