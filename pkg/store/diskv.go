// Package store caches lookup reference data (clients, employees,
// services) on disk so tables and name resolution work between runs
// without refetching. Appointments, slots, and form drafts are never
// cached: slots are ephemeral by contract and drafts are discarded on
// dialog close.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

const lookupsKey = "lookups"

// Lookups is the cached reference snapshot. It is replaced wholesale on
// every refresh.
type Lookups struct {
	Clients   []salon.Client   `json:"clients"`
	Employees []salon.Employee `json:"employees"`
	Services  []salon.Service  `json:"services"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// Stale reports whether the snapshot is older than maxAge.
func (l *Lookups) Stale(maxAge time.Duration, now time.Time) bool {
	if l == nil || l.FetchedAt.IsZero() {
		return true
	}
	return now.Sub(l.FetchedAt) > maxAge
}

// ClientName resolves a client id to a display name, or the placeholder.
func (l *Lookups) ClientName(id *int64) string {
	if l == nil || id == nil {
		return salon.Placeholder
	}
	for _, c := range l.Clients {
		if c.ID == *id {
			return c.Name()
		}
	}
	return salon.Placeholder
}

// EmployeeName resolves an employee id to a display name.
func (l *Lookups) EmployeeName(id int64) string {
	if l == nil {
		return salon.Placeholder
	}
	for _, e := range l.Employees {
		if e.ID == id {
			return e.Name()
		}
	}
	return salon.Placeholder
}

// ServiceName resolves a service id to its name.
func (l *Lookups) ServiceName(id int64) string {
	if l == nil {
		return salon.Placeholder
	}
	for _, s := range l.Services {
		if s.ID == id {
			return s.Name
		}
	}
	return salon.Placeholder
}

// Service resolves a service id to the full record.
func (l *Lookups) Service(id int64) (salon.Service, bool) {
	if l == nil {
		return salon.Service{}, false
	}
	for _, s := range l.Services {
		if s.ID == id {
			return s, true
		}
	}
	return salon.Service{}, false
}

// Employee resolves an employee id to the full record (skills included).
func (l *Lookups) Employee(id int64) (salon.Employee, bool) {
	if l == nil {
		return salon.Employee{}, false
	}
	for _, e := range l.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return salon.Employee{}, false
}

// Cache is the persistence contract for lookup snapshots.
type Cache interface {
	Lookups() (*Lookups, bool)
	SaveLookups(*Lookups) error
}

// Open returns a Cache rooted at basePath; with an empty basePath the
// default ~/.salon.cache directory is used.
func Open(basePath string) (Cache, error) {
	if basePath == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("resolve home: %w", err)
		}
		basePath = filepath.Join(home, ".salon.cache")
	}
	return &cache{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type cache struct {
	d *diskv.Diskv
}

func (c *cache) Lookups() (*Lookups, bool) {
	raw, err := c.d.Read(lookupsKey)
	if err != nil {
		return nil, false
	}
	var l Lookups
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, false
	}
	return &l, true
}

func (c *cache) SaveLookups(l *Lookups) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode lookups: %w", err)
	}
	return c.d.Write(lookupsKey, raw)
}
