package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/api"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/config"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "salon",
		Short: base.Wrap80("Beauty salon appointments on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAppointments(topLevel)
	addBook(topLevel)
	addActions(topLevel)
	addSlots(topLevel)
	addLookups(topLevel)
	addVersion(topLevel)
}

// load reads the configuration and builds an authenticated backend client.
func load() (config.Config, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	return *cfg, api.New(cfg.URL, cfg.Token, api.WithTimeout(cfg.Timeout)), nil
}

// source wraps the backend with the disk-backed lookup cache.
func source(cfg config.Config, backend *api.Client) (*store.Source, error) {
	cache, err := store.Open("")
	if err != nil {
		return nil, err
	}
	return &store.Source{API: backend, Cache: cache, MaxAge: cfg.CacheMaxAge}, nil
}
