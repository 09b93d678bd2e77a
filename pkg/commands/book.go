package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/commands/options"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/runner/book"
)

func addBook(topLevel *cobra.Command) {
	bo := &options.BookOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment into an open slot",
		Example: `
salon book --client 7 --employee 2 --service 4 --date 2026-09-01 --start 14:30
salon book --client 7 --employee 2 --service 4 --date 2026-09-01 --start 09:00 --notes "walk-in"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, backend, err := load()
			if err != nil {
				return err
			}
			date, err := bo.ParseDate()
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

			b := book.Book{
				API:      backend,
				Lookups:  lookups,
				Employee: bo.Employee,
				Service:  bo.Service,
				Date:     date,
				Start:    bo.Start,
				Notes:    bo.Notes,
				ShowID:   io.ShowID,
			}
			if bo.Client > 0 {
				b.Client = &bo.Client
			}
			return oo.HandleError(b.Do(context.Background()))
		},
	}

	options.AddBookArgs(cmd, bo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
