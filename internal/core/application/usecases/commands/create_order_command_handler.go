package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
)

// ErrTenantNotFound is returned when an order references a tenant
// that is not registered.
var ErrTenantNotFound = errors.New("tenant not found")

// CreateOrderCommandHandler handles the business logic for order intake.
// New orders start in "new" status with tenant-assigned delivery; restaurant
// delivery orders get a projected ready time from the preparation estimate.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, tenantID, order.Delivery, 20)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command.
// Resolves the owning tenant, applies the tenant's default preparation
// time when the command carries none, and projects a ready time for
// restaurant delivery orders.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.TenantRepository().Get(ctx, cmd.TenantID())
	if err != nil {
		return errors.Join(ErrTenantNotFound, err)
	}

	prepTimeMin := cmd.PrepTimeMin()
	if prepTimeMin == 0 {
		prepTimeMin = owner.DefaultPrepTimeMin()
	}

	createdAt := time.Now().UTC()
	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.TenantID(), cmd.Fulfillment(), prepTimeMin, createdAt)
	if err != nil {
		return err
	}

	if owner.Type() == tenant.Restaurant && prepTimeMin > 0 {
		if err = newOrder.ScheduleReady(createdAt.Add(time.Duration(prepTimeMin) * time.Minute)); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
