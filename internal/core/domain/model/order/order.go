package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrFallbackAlreadyTriggered is returned when TriggerFallback is called on an order
	// whose delivery responsibility was already handed over to the market.
	// The fallback transition happens at most once per order.
	ErrFallbackAlreadyTriggered = errors.New("fallback has already been triggered for this order")

	// ErrFallbackNotAllowedForPickup is returned when TriggerFallback is called on a
	// pickup order. Pickup orders never participate in courier dispatch.
	ErrFallbackNotAllowedForPickup = errors.New("fallback is not applicable to pickup orders")

	// ErrCourierAlreadyAssigned is returned when AssignCourier is called on an order
	// that has already been claimed by a courier.
	ErrCourierAlreadyAssigned = errors.New("order is already claimed by a courier")
)

// Order represents one customer purchase awaiting fulfillment. It is the aggregate
// root that manages the order lifecycle from placement through delivery.
//
// Order follows these invariants:
//   - Must have valid unique and tenant identifiers
//   - Status transitions follow the rules defined by Status
//   - AssignmentMode moves from TenantAssigned to MarketAssigned at most once,
//     and never back; fallbackTriggeredAt records when that happened
//   - A courier claims the order at most once
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tenantID is the owning merchant, immutable after creation
	tenantID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// fulfillment distinguishes customer pickup from courier delivery
	fulfillment FulfillmentType

	// prepTimeMin is the expected preparation time in minutes
	prepTimeMin int

	// readyAt is when the order is expected to be ready for courier pickup.
	// Meaningful mainly for restaurant orders; nil when unknown.
	readyAt *time.Time

	// assignmentMode identifies who is responsible for the delivery
	assignmentMode AssignmentMode

	// fallbackTriggeredAt is nil until delivery responsibility falls back
	// to the market; once set it is immutable and guards re-evaluation
	fallbackTriggeredAt *time.Time

	// createdAt is the order placement timestamp, used as a stable tie-break
	createdAt time.Time

	// courierID is the claiming courier's ID (nil while unclaimed)
	courierID *kernel.UUID

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. Orders start in New status,
// TenantAssigned mode, with no courier and no fallback.
//
// Parameters:
//   - id: unique identifier for the order
//   - tenantID: the owning merchant's identifier
//   - fulfillment: Pickup or Delivery
//   - prepTimeMin: expected preparation time in minutes (must not be negative)
//   - createdAt: order placement timestamp (must not be zero)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	fulfillment FulfillmentType,
	prepTimeMin int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:         New,
		assignmentMode: TenantAssigned,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setFulfillment(fulfillment),
		o.setPrepTimeMin(prepTimeMin),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying the
// creation defaults. All enum values are validated; optional fields may be nil.
// A zero createdAt is accepted and treated as "now" by the fallback evaluator.
func RestoreOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	status Status,
	fulfillment FulfillmentType,
	prepTimeMin int,
	readyAt *time.Time,
	assignmentMode AssignmentMode,
	fallbackTriggeredAt *time.Time,
	createdAt time.Time,
	courierID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		status:              status,
		readyAt:             readyAt,
		assignmentMode:      assignmentMode,
		fallbackTriggeredAt: fallbackTriggeredAt,
		createdAt:           createdAt,
		courierID:           courierID,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		status.Validate(),
		o.setFulfillment(fulfillment),
		o.setPrepTimeMin(prepTimeMin),
		assignmentMode.Validate(),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TenantID returns the owning merchant's identifier.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Fulfillment returns the order's fulfillment type.
func (o *Order) Fulfillment() FulfillmentType {
	return o.fulfillment
}

// PrepTimeMin returns the expected preparation time in minutes.
func (o *Order) PrepTimeMin() int {
	return o.prepTimeMin
}

// ReadyAt returns when the order is expected to be ready for courier pickup.
// Returns nil when no expected ready time is known.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// AssignmentMode returns who is currently responsible for the delivery.
func (o *Order) AssignmentMode() AssignmentMode {
	return o.assignmentMode
}

// FallbackTriggeredAt returns when delivery responsibility fell back to the
// market, or nil if fallback never happened.
func (o *Order) FallbackTriggeredAt() *time.Time {
	return o.fallbackTriggeredAt
}

// CreatedAt returns the order placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Courier returns the claiming courier's ID, or nil while unclaimed.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// ScheduleReady records the expected ready time for courier pickup.
// Rejected on terminal orders and zero timestamps.
func (o *Order) ScheduleReady(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("readyAt")
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order cannot schedule a ready time", o.status.String()),
		)
	}

	o.readyAt = &at
	return nil
}

// StartPreparing transitions the order to Preparing.
func (o *Order) StartPreparing() error {
	return o.transitionTo(Preparing)
}

// MarkReady transitions the order to Ready.
func (o *Order) MarkReady() error {
	return o.transitionTo(Ready)
}

// MarkOutForDelivery transitions the order to OutForDelivery.
func (o *Order) MarkOutForDelivery() error {
	return o.transitionTo(OutForDelivery)
}

// MarkDelivered transitions the order to Delivered, a terminal status.
func (o *Order) MarkDelivered() error {
	return o.transitionTo(Delivered)
}

// Cancel transitions the order to Canceled, a terminal status.
// Allowed from any non-terminal status.
func (o *Order) Cancel() error {
	return o.transitionTo(Canceled)
}

// AssignCourier records the courier that claimed the order. A courier claim
// removes the order from the dispatch queue regardless of assignment mode.
//
// Rules enforced:
//   - the courier ID must be valid
//   - the order must not be in a terminal status
//   - an order is claimed at most once
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order cannot be claimed by a courier", o.status.String()),
		)
	}

	if o.courierID != nil {
		return ErrCourierAlreadyAssigned
	}

	o.courierID = &courierID
	return nil
}

// TriggerFallback hands delivery responsibility over to the market's pooled
// courier fleet and stamps fallbackTriggeredAt with the supplied time.
//
// The transition happens at most once per order: a second call, or a call on
// an order already in MarketAssigned mode, returns ErrFallbackAlreadyTriggered.
// Pickup orders are rejected with ErrFallbackNotAllowedForPickup.
func (o *Order) TriggerFallback(now time.Time) error {
	if o.fulfillment != Delivery {
		return ErrFallbackNotAllowedForPickup
	}

	if o.assignmentMode == MarketAssigned || o.fallbackTriggeredAt != nil {
		return ErrFallbackAlreadyTriggered
	}

	o.assignmentMode = MarketAssigned
	o.fallbackTriggeredAt = &now
	return nil
}

// transitionTo applies a status transition through the Status state machine.
func (o *Order) transitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTenantID validates and sets the owning merchant's identifier.
// This is a private method used only during construction.
func (o *Order) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	o.tenantID = tenantID
	return nil
}

// setFulfillment validates and sets the order's fulfillment type.
// This is a private method used only during construction.
func (o *Order) setFulfillment(fulfillment FulfillmentType) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	o.fulfillment = fulfillment
	return nil
}

// setPrepTimeMin validates and sets the expected preparation time.
// This is a private method used only during construction.
func (o *Order) setPrepTimeMin(prepTimeMin int) error {
	if prepTimeMin < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"prep time is invalid",
			fmt.Errorf("%d is negative", prepTimeMin),
		)
	}
	o.prepTimeMin = prepTimeMin
	return nil
}

// setCreatedAt validates and sets the order placement timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
