package services

import (
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
)

// FallbackEvaluator scans a snapshot of orders and, where policy and elapsed
// time demand it, hands an order's delivery responsibility over from the
// merchant to the market's pooled courier fleet.
//
// The transition is at-most-once per order: orders already in market mode, or
// with a recorded fallback timestamp, are skipped, so repeated evaluation of
// the same snapshot after a trigger produces no further changes.
//
// Example usage:
//
//	evaluator := services.NewFallbackEvaluator(services.DefaultDispatchPolicy())
//	changed, err := evaluator.Evaluate(orders, roster, time.Now())
//	if err != nil {
//	    return err
//	}
//	// persist only the orders in changed
type FallbackEvaluator struct {
	policy DispatchPolicy
}

// NewFallbackEvaluator creates a fallback evaluator with the given policy.
func NewFallbackEvaluator(policy DispatchPolicy) FallbackEvaluator {
	return FallbackEvaluator{policy: policy}
}

// Evaluate applies the fallback rules to every order in the snapshot and
// returns the orders it mutated, so the caller can persist exactly the delta.
//
// Per order, in precedence order:
//   - skipped when delivery responsibility already fell back (market mode or
//     recorded fallback timestamp), when it is a pickup order, or when its
//     tenant is unresolved or has not opted into fallback
//   - restaurant orders fall back when Ready and older than the ready
//     fallback age, or near-ready and older than the near-ready fallback age
//   - shop and service orders fall back purely by age, regardless of status
//
// A missing creation timestamp is treated as "now" (zero elapsed age).
// Returns an error only when the snapshot contains an improperly constructed
// order.
func (f FallbackEvaluator) Evaluate(
	orders []*order.Order,
	roster tenant.Roster,
	now time.Time,
) ([]*order.Order, error) {
	var changed []*order.Order

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		if o.AssignmentMode() == order.MarketAssigned || o.FallbackTriggeredAt() != nil {
			continue
		}

		if o.Fulfillment() != order.Delivery {
			continue
		}

		t, ok := roster.Get(o.TenantID())
		if !ok || !t.AllowsMarketCourierFallback() {
			continue
		}

		if !f.shouldTrigger(o, t.Type(), now) {
			continue
		}

		if err := o.TriggerFallback(now); err != nil {
			return nil, err
		}

		changed = append(changed, o)
	}

	return changed, nil
}

// shouldTrigger applies the tenant-type-specific time rules to one order.
func (f FallbackEvaluator) shouldTrigger(o *order.Order, tenantType tenant.Type, now time.Time) bool {
	var elapsed time.Duration
	if createdAt := o.CreatedAt(); !createdAt.IsZero() {
		elapsed = now.Sub(createdAt)
	}

	if tenantType != tenant.Restaurant {
		return elapsed >= f.policy.ShopServiceFallback
	}

	isReady := o.Status() == order.Ready
	if isReady {
		return elapsed >= f.policy.RestaurantReadyFallback
	}

	readyAt := o.ReadyAt()
	isNearReady := readyAt != nil && readyAt.Sub(now) <= f.policy.NearReadyWindow

	return isNearReady && elapsed >= f.policy.RestaurantNearReadyFallback
}
