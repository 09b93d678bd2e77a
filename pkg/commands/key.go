package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the appointment status legend",
		Example: `
salon key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return oo.HandleError(k.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
