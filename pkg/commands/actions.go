package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/booking"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/commands/options"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/runner/action"
)

func addActions(topLevel *cobra.Command) {
	addAction(topLevel, booking.ActionConfirm, "confirm <id>",
		"Confirm a pending appointment")
	addAction(topLevel, booking.ActionCancel, "cancel <id>",
		"Cancel an appointment")
	addAction(topLevel, booking.ActionComplete, "complete <id>",
		"Mark an appointment completed")
	addAction(topLevel, booking.ActionNoShow, "no-show <id>",
		"Mark an appointment as a client no-show")
}

func addAction(topLevel *cobra.Command, act booking.Action, use, short string) {
	io := &options.IDOptions{}
	reason := ""

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: fmt.Sprintf(`
salon %s 42
`, act),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("appointment id must be a number: %w", err)
			}
			cfg, backend, err := load()
			if err != nil {
				return err
			}
			src, err := source(cfg, backend)
			if err != nil {
				return err
			}
			lookups, err := src.Resolve(context.Background(), false)
			if err != nil {
				return err
			}

			a := action.Action{
				API:     backend,
				Lookups: lookups,
				ID:      id,
				Act:     act,
				Reason:  reason,
				ShowID:  io.ShowID,
			}
			return oo.HandleError(a.Do(context.Background()))
		},
	}

	if act == booking.ActionCancel {
		cmd.Flags().StringVar(&reason, "reason", "",
			"Why the appointment is being cancelled.")
	}
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
