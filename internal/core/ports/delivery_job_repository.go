package ports

import (
	"context"

	"dispatch/internal/core/domain/model/deliveryjob"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryJobRepository defines the persistence contract for delivery job
// aggregates. The dispatch engine only reads jobs; the write methods serve
// the courier workflow that creates and progresses trips.
type DeliveryJobRepository interface {
	// Add persists a new delivery job aggregate to storage.
	Add(ctx context.Context, aggregate *deliveryjob.DeliveryJob) error

	// Update persists changes to an existing delivery job aggregate.
	Update(ctx context.Context, aggregate *deliveryjob.DeliveryJob) error

	// Get retrieves a delivery job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliveryjob.DeliveryJob, error)

	// GetAllActive retrieves all jobs that still claim their orders,
	// i.e. jobs that are neither Done nor Canceled.
	GetAllActive(ctx context.Context) ([]*deliveryjob.DeliveryJob, error)
}
