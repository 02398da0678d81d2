package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tenant"
)

// TenantRepository defines the persistence contract for tenant aggregates.
type TenantRepository interface {
	// Add persists a new tenant aggregate to storage.
	// The tenant must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *tenant.Tenant) error

	// Update persists changes to an existing tenant aggregate.
	Update(ctx context.Context, aggregate *tenant.Tenant) error

	// Get retrieves a tenant aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error)

	// GetAllByMarket retrieves all tenants listed in the given market.
	// The result is the roster the dispatch engine resolves orders against.
	GetAllByMarket(ctx context.Context, marketID kernel.UUID) ([]*tenant.Tenant, error)
}
