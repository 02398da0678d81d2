package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/core/domain/services"
)

// BuildDispatchQueueCommandHandler builds the courier-facing dispatch queue
// for one market. Building the queue is a mutation: the fallback evaluation
// runs first over the same snapshot, and any orders it moves to market
// delivery are persisted before the queue is returned.
type BuildDispatchQueueCommandHandler struct {
	uowFactory UoWFactory
	builder    services.QueueBuilder
	locks      *MarketLocks
}

// NewBuildDispatchQueueCommandHandler creates a handler for queue builds.
// The locks instance must be shared with every other handler that mutates
// market order state.
func NewBuildDispatchQueueCommandHandler(
	uowFactory UoWFactory,
	policy services.DispatchPolicy,
	locks *MarketLocks,
) BuildDispatchQueueCommandHandler {
	return BuildDispatchQueueCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewQueueBuilder(policy),
		locks:      locks,
	}
}

// Handle processes one queue build and returns the ordered queue.
// Orders claimed by an active delivery job or already carrying a courier
// never enter the queue.
func (h *BuildDispatchQueueCommandHandler) Handle(
	ctx context.Context,
	cmd BuildDispatchQueueCommand,
) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(cmd.MarketID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenants, err := uow.TenantRepository().GetAllByMarket(ctx, cmd.MarketID())
	if err != nil {
		return nil, err
	}

	if len(tenants) == 0 {
		return nil, ErrNoTenantsInMarket
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllByTenants(ctx, tenantIDs(tenants))
	if err != nil {
		return nil, err
	}

	jobs, err := uow.DeliveryJobRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	queue, changed, err := h.builder.Build(orders, tenant.NewRoster(tenants), jobs, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	for _, o := range changed {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return queue, nil
}
