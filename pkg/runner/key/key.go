// Package key provides the CLI helper that prints the status legend.
package key

import (
	"context"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/printers"
)

// Key prints the appointment status legend.
type Key struct{}

// Do renders the legend to stdout.
func (k *Key) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Key()
	return nil
}
