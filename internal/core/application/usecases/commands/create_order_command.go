package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPrepTimeIsNegative = errors.New("prep time must not be negative")
)

// CreateOrderCommand represents a request to register an incoming order.
// Prep time is optional: zero means "use the tenant's default".
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, tenantID, order.Delivery, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	tenantID    kernel.UUID
	fulfillment order.FulfillmentType
	prepTimeMin int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an incoming order.
// Validates the identifiers and the fulfillment type; prepTimeMin may be
// zero to fall back to the tenant default.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	fulfillment order.FulfillmentType,
	prepTimeMin int,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTenantID(tenantID),
		orderCommand.setFulfillment(fulfillment),
		orderCommand.setPrepTimeMin(prepTimeMin),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the tenant the order belongs to.
func (c CreateOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Fulfillment returns how the order leaves the tenant.
func (c CreateOrderCommand) Fulfillment() order.FulfillmentType {
	return c.fulfillment
}

// PrepTimeMin returns the requested preparation time in minutes,
// zero when the tenant default should apply.
func (c CreateOrderCommand) PrepTimeMin() int {
	return c.prepTimeMin
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateOrderCommand) setFulfillment(fulfillment order.FulfillmentType) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}

	c.fulfillment = fulfillment
	return nil
}

func (c *CreateOrderCommand) setPrepTimeMin(prepTimeMin int) error {
	if prepTimeMin < 0 {
		return ErrPrepTimeIsNegative
	}

	c.prepTimeMin = prepTimeMin
	return nil
}
