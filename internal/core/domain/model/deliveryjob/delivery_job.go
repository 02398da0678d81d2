package deliveryjob

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDeliveryJobIsNotConstructed is returned when a DeliveryJob instance was not
	// created through the NewDeliveryJob or RestoreDeliveryJob factory methods.
	ErrDeliveryJobIsNotConstructed = errors.New(
		"DeliveryJob must be created via NewDeliveryJob or RestoreDeliveryJob constructor")
)

// Item references one order included in a delivery job, together with the
// tenant the courier collects it from.
type Item struct {
	OrderID  kernel.UUID
	TenantID kernel.UUID
}

// Validate checks both identifiers of the item.
func (i Item) Validate() error {
	return errors.Join(
		i.OrderID.Validate(),
		i.TenantID.Validate(),
	)
}

// DeliveryJob represents one courier trip grouping one or more orders.
//
// Jobs are created and progressed by the courier workflow; the dispatch
// engine only reads job state to exclude orders already claimed by an
// active (non-terminal) job from the dispatch queue.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Must contain at least one item, each with valid identifiers
//   - Status transitions follow the rules defined by Status
type DeliveryJob struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// status represents the current state of the courier trip
	status Status

	// items are the orders included in the trip, in pickup order
	items []Item

	// isConstructed ensures the job was created via a constructor
	isConstructed bool
}

// NewDeliveryJob creates a new DeliveryJob in New status.
// The job must reference at least one order.
func NewDeliveryJob(id kernel.UUID, items []Item) (*DeliveryJob, error) {
	j := &DeliveryJob{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setItems(items),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreDeliveryJob reconstructs a DeliveryJob from persistence.
func RestoreDeliveryJob(id kernel.UUID, status Status, items []Item) (*DeliveryJob, error) {
	j := &DeliveryJob{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		status.Validate(),
		j.setItems(items),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the DeliveryJob instance was properly constructed.
func (j *DeliveryJob) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrDeliveryJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *DeliveryJob) IsEqual(other *DeliveryJob) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *DeliveryJob) ID() kernel.UUID {
	return j.id
}

// Status returns the current status of the job.
func (j *DeliveryJob) Status() Status {
	return j.status
}

// Items returns a copy of the orders included in the trip, in pickup order.
func (j *DeliveryJob) Items() []Item {
	items := make([]Item, len(j.items))
	copy(items, j.items)
	return items
}

// IsActive reports whether the job still claims its orders.
// Done and Canceled jobs release their orders back to dispatch.
func (j *DeliveryJob) IsActive() bool {
	return !j.status.IsTerminal()
}

// HasOrder reports whether the job includes the given order.
func (j *DeliveryJob) HasOrder(orderID kernel.UUID) bool {
	for _, item := range j.items {
		if item.OrderID.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// Assign transitions the job to Assigned.
func (j *DeliveryJob) Assign() error {
	return j.transitionTo(Assigned)
}

// StartPicking transitions the job to Picking.
func (j *DeliveryJob) StartPicking() error {
	return j.transitionTo(Picking)
}

// StartDelivering transitions the job to Delivering.
func (j *DeliveryJob) StartDelivering() error {
	return j.transitionTo(Delivering)
}

// Complete transitions the job to Done, a terminal status.
func (j *DeliveryJob) Complete() error {
	return j.transitionTo(Done)
}

// Cancel transitions the job to Canceled, a terminal status.
func (j *DeliveryJob) Cancel() error {
	return j.transitionTo(Canceled)
}

// transitionTo applies a status transition through the Status state machine.
func (j *DeliveryJob) transitionTo(next Status) error {
	newStatus, err := j.status.TransitionTo(next)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// setID validates and sets the job's unique identifier.
// This is a private method used only during construction.
func (j *DeliveryJob) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

// setItems validates and sets the job's order references.
// This is a private method used only during construction.
func (j *DeliveryJob) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	j.items = make([]Item, len(items))
	copy(j.items, items)
	return nil
}
