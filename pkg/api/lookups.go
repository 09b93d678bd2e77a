package api

import (
	"context"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/salon"
)

// ListClients fetches the full client book, following pagination.
func (c *Client) ListClients(ctx context.Context) ([]salon.Client, error) {
	return getAll[salon.Client](ctx, c, "/api/clients/", nil)
}

// ListEmployees fetches all employees with their service skill sets.
func (c *Client) ListEmployees(ctx context.Context) ([]salon.Employee, error) {
	return getAll[salon.Employee](ctx, c, "/api/employees/", nil)
}

// ListServices fetches the service catalog.
func (c *Client) ListServices(ctx context.Context) ([]salon.Service, error) {
	return getAll[salon.Service](ctx, c, "/api/services/", nil)
}
