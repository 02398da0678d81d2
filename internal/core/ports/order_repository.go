package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Besides single-aggregate access it provides the snapshot read the dispatch
// engine operates on: all orders belonging to a set of tenants.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByTenants retrieves every order belonging to any of the given
	// tenants. This is the order snapshot that fallback evaluation and
	// queue construction operate on.
	GetAllByTenants(ctx context.Context, tenantIDs []kernel.UUID) ([]*order.Order, error)
}
