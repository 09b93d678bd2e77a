package ui

import (
	"context"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/config"
	salonui "github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/tui/app"
)

// UI launches the interactive terminal program.
type UI struct {
	Cfg config.Config
}

func (u *UI) Do(ctx context.Context) error {
	return salonui.Run(u.Cfg)
}
