package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

type fakeAPI struct {
	calls     int
	clientErr error
	err       error
}

func (f *fakeAPI) ListClients(context.Context) ([]salon.Client, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return []salon.Client{{ID: 5, FirstName: "Maja", LastName: "Wrona"}}, nil
}

func (f *fakeAPI) ListEmployees(context.Context) ([]salon.Employee, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []salon.Employee{{ID: 7, FirstName: "Anna", LastName: "Lis", Skills: []int64{3}}}, nil
}

func (f *fakeAPI) ListServices(context.Context) ([]salon.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []salon.Service{{ID: 3, Name: "Haircut", Price: "85.00"}}, nil
}

type memCache struct {
	l *Lookups
}

func (m *memCache) Lookups() (*Lookups, bool) { return m.l, m.l != nil }
func (m *memCache) SaveLookups(l *Lookups) error {
	m.l = l
	return nil
}

func TestResolveFreshCacheSkipsBackend(t *testing.T) {
	api := &fakeAPI{}
	cache := &memCache{l: &Lookups{FetchedAt: time.Now()}}
	src := &Source{API: api, Cache: cache, MaxAge: time.Hour}

	if _, err := src.Resolve(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.calls != 0 {
		t.Fatal("fresh cache should not hit the backend")
	}
}

func TestResolveRefreshRewritesCache(t *testing.T) {
	api := &fakeAPI{}
	cache := &memCache{l: &Lookups{FetchedAt: time.Now()}}
	src := &Source{API: api, Cache: cache, MaxAge: time.Hour}

	l, err := src.Resolve(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.calls != 1 {
		t.Fatal("refresh must hit the backend")
	}
	if cache.l != l {
		t.Fatal("refresh must rewrite the cache")
	}
	if got := l.EmployeeName(7); got != "Anna Lis" {
		t.Fatalf("unexpected employee name %q", got)
	}
	if got := l.ServiceName(99); got != salon.Placeholder {
		t.Fatalf("unknown id should resolve to the placeholder, got %q", got)
	}
}

func TestResolveRoleGatedClients(t *testing.T) {
	api := &fakeAPI{clientErr: errors.New("403")}
	src := &Source{API: api, Cache: &memCache{}}

	l, err := src.Resolve(context.Background(), true)
	if err != nil {
		t.Fatalf("a refused client book must not fail the resolve: %v", err)
	}
	if len(l.Clients) != 0 {
		t.Fatal("refused client book should yield no clients")
	}
	if len(l.Employees) != 1 || len(l.Services) != 1 {
		t.Fatal("employees and services still resolve")
	}
}

func TestResolveOfflineFallback(t *testing.T) {
	stale := &Lookups{FetchedAt: time.Now().Add(-48 * time.Hour)}
	api := &fakeAPI{err: errors.New("connection refused")}
	src := &Source{API: api, Cache: &memCache{l: stale}, MaxAge: time.Hour}

	l, err := src.Resolve(context.Background(), false)
	if err != nil {
		t.Fatalf("stale cache should serve offline: %v", err)
	}
	if l != stale {
		t.Fatal("expected the stale snapshot")
	}

	empty := &Source{API: api, Cache: &memCache{}}
	if _, err := empty.Resolve(context.Background(), false); err == nil {
		t.Fatal("no cache and no backend must fail")
	}
}
