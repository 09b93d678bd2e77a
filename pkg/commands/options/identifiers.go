package options

import "github.com/spf13/cobra"

// IDOptions toggle id columns in table output.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, io *IDOptions) {
	cmd.Flags().BoolVarP(&io.ShowID, "id", "i", false,
		"Show appointment ids.")
}

// RefreshOptions force the lookup cache to refetch.
type RefreshOptions struct {
	Refresh bool
}

func AddRefreshArgs(cmd *cobra.Command, ro *RefreshOptions) {
	cmd.Flags().BoolVar(&ro.Refresh, "refresh", false,
		"Bypass the lookup cache and refetch from the backend.")
}
