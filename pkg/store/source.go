package store

import (
	"context"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

// LookupAPI is the slice of the backend client the source needs.
type LookupAPI interface {
	ListClients(ctx context.Context) ([]salon.Client, error)
	ListEmployees(ctx context.Context) ([]salon.Employee, error)
	ListServices(ctx context.Context) ([]salon.Service, error)
}

// Source resolves the lookup snapshot, serving from the disk cache when it
// is fresh enough and refreshing from the backend otherwise.
type Source struct {
	API    LookupAPI
	Cache  Cache
	MaxAge time.Duration
}

// Resolve returns the lookup snapshot. With refresh set, or with a stale
// or missing cache, it refetches everything and rewrites the cache
// wholesale. The client book is role-gated server-side; when that endpoint
// refuses, the snapshot simply carries no clients instead of failing the
// whole resolve.
func (s *Source) Resolve(ctx context.Context, refresh bool) (*Lookups, error) {
	maxAge := s.MaxAge
	if maxAge <= 0 {
		maxAge = time.Hour
	}

	if !refresh && s.Cache != nil {
		if cached, ok := s.Cache.Lookups(); ok && !cached.Stale(maxAge, time.Now()) {
			return cached, nil
		}
	}

	employees, err := s.API.ListEmployees(ctx)
	if err != nil {
		return s.fallback(err)
	}
	services, err := s.API.ListServices(ctx)
	if err != nil {
		return s.fallback(err)
	}
	clients, err := s.API.ListClients(ctx)
	if err != nil {
		clients = nil
	}

	l := &Lookups{
		Clients:   clients,
		Employees: employees,
		Services:  services,
		FetchedAt: time.Now(),
	}
	if s.Cache != nil {
		// Best effort: a cache write failure never fails the resolve.
		_ = s.Cache.SaveLookups(l)
	}
	return l, nil
}

// fallback serves a stale cached snapshot when the backend is down, so
// read-only commands keep working offline.
func (s *Source) fallback(err error) (*Lookups, error) {
	if s.Cache != nil {
		if cached, ok := s.Cache.Lookups(); ok {
			return cached, nil
		}
	}
	return nil, err
}
