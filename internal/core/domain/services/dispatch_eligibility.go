package services

import (
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
)

// DispatchEligibility decides whether an order may currently be placed into
// the market dispatch queue, to be picked up by a market-pooled courier.
//
// The predicate is pure: no side effects, deterministic given the evaluation
// time. Unresolved tenants default to Shop semantics.
//
// Example usage:
//
//	eligibility := services.NewDispatchEligibility(services.DefaultDispatchPolicy())
//	if eligibility.IsEligible(o, roster, time.Now()) {
//	    // o may be queued for a market courier
//	}
type DispatchEligibility struct {
	policy DispatchPolicy
}

// NewDispatchEligibility creates an eligibility predicate with the given policy.
func NewDispatchEligibility(policy DispatchPolicy) DispatchEligibility {
	return DispatchEligibility{policy: policy}
}

// IsEligible reports whether the order may enter the market dispatch queue.
//
// Rules, in precedence order:
//  1. Only MarketAssigned orders are ever queued for market couriers.
//  2. Pickup orders never qualify.
//  3. Orders already out for delivery, delivered or canceled never qualify.
//  4. Restaurant orders qualify when Ready, or when their expected ready time
//     is within the near-ready window (an overdue ready time also qualifies).
//     A restaurant order with no expected ready time does not qualify until
//     it is Ready.
//  5. Shop and service orders qualify in any pre-pickup status; they are
//     assumed pickable on demand.
func (e DispatchEligibility) IsEligible(o *order.Order, roster tenant.Roster, now time.Time) bool {
	if o.Validate() != nil {
		return false
	}

	if o.AssignmentMode() != order.MarketAssigned {
		return false
	}

	if o.Fulfillment() != order.Delivery {
		return false
	}

	status := o.Status()
	if status == order.OutForDelivery || status == order.Delivered || status == order.Canceled {
		return false
	}

	if roster.TypeOf(o.TenantID()) == tenant.Restaurant {
		if status == order.Ready {
			return true
		}

		readyAt := o.ReadyAt()
		if readyAt == nil {
			return false
		}

		return readyAt.Sub(now) <= e.policy.NearReadyWindow
	}

	return status == order.New || status == order.Preparing || status == order.Ready
}
