package lookups

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/printers"
	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/store"
)

// Kinds of lookup listings.
const (
	KindClients   = "clients"
	KindEmployees = "employees"
	KindServices  = "services"
)

// Lookups resolves the lookup snapshot (through the disk cache) and
// prints one of its tables.
type Lookups struct {
	Source  *store.Source
	Kind    string
	Refresh bool
}

func (l *Lookups) Do(ctx context.Context) error {
	if l.Source == nil {
		return errors.New("can not list, no backend")
	}

	snap, err := l.Source.Resolve(ctx, l.Refresh)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	switch l.Kind {
	case KindClients:
		pp.TitleWithCount("Clients", len(snap.Clients))
		pp.Clients(snap.Clients)
	case KindEmployees:
		pp.TitleWithCount("Employees", len(snap.Employees))
		pp.Employees(snap.Employees)
	case KindServices:
		pp.TitleWithCount("Services", len(snap.Services))
		pp.Services(snap.Services)
	default:
		return fmt.Errorf("unknown lookup kind %q", l.Kind)
	}
	return nil
}
