package services

import (
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
)

// BatchPolicy decides whether two orders can be combined into a single
// courier trip. The predicate is pure and symmetric by construction.
//
// Example usage:
//
//	batch := services.NewBatchPolicy(services.DefaultDispatchPolicy())
//	ok, err := batch.CanBatch(a, b, roster)
//	if err != nil {
//	    return err
//	}
//	if ok {
//	    // a and b may share one trip
//	}
type BatchPolicy struct {
	policy DispatchPolicy
}

// NewBatchPolicy creates a batch compatibility predicate with the given policy.
func NewBatchPolicy(policy DispatchPolicy) BatchPolicy {
	return BatchPolicy{policy: policy}
}

// CanBatch reports whether the two orders may share one courier trip.
//
// When either order belongs to a restaurant (unresolved tenants default to
// Shop), both must come from the same kitchen; they batch when their expected
// ready times lie within the batch window of each other, or, lacking ready
// times, when both are already Ready. Orders of shops and services batch
// freely across tenants, without time constraints.
//
// Returns an error only when either order is improperly constructed.
func (p BatchPolicy) CanBatch(a, b *order.Order, roster tenant.Roster) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := b.Validate(); err != nil {
		return false, err
	}

	typeA := roster.TypeOf(a.TenantID())
	typeB := roster.TypeOf(b.TenantID())

	if typeA != tenant.Restaurant && typeB != tenant.Restaurant {
		return true, nil
	}

	if !a.TenantID().IsEqual(b.TenantID()) {
		return false, nil
	}

	readyA, readyB := a.ReadyAt(), b.ReadyAt()
	if readyA != nil && readyB != nil {
		spread := readyA.Sub(*readyB)
		if spread < 0 {
			spread = -spread
		}
		return spread <= p.policy.BatchWindow, nil
	}

	return a.Status() == order.Ready && b.Status() == order.Ready, nil
}
