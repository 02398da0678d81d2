package services

import (
	"slices"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/deliveryjob"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
)

// QueueBuilder assembles the ordered dispatch queue a market dispatcher
// consumes: all currently eligible, unclaimed orders, sorted by urgency.
//
// Building the queue always re-runs the fallback evaluation first, so the
// queue reflects the latest time-based responsibility transitions as of the
// snapshot. The orders the evaluation mutated are returned alongside the
// queue so the caller can persist them.
//
// Example usage:
//
//	builder := services.NewQueueBuilder(services.DefaultDispatchPolicy())
//	queue, changed, err := builder.Build(orders, roster, jobs, time.Now())
//	if err != nil {
//	    return err
//	}
//	// persist changed, hand queue to the dispatcher
type QueueBuilder struct {
	evaluator   FallbackEvaluator
	eligibility DispatchEligibility
}

// NewQueueBuilder creates a queue builder with the given policy.
func NewQueueBuilder(policy DispatchPolicy) QueueBuilder {
	return QueueBuilder{
		evaluator:   NewFallbackEvaluator(policy),
		eligibility: NewDispatchEligibility(policy),
	}
}

// Build runs the fallback evaluation over the snapshot, then filters and
// sorts the dispatch queue.
//
// An order enters the queue when it passes the eligibility predicate, has not
// been claimed by any courier, and is not referenced by an active delivery
// job. The queue is sorted by expected ready time ascending; orders without
// one sort after all orders that have one, in placement order. Ties break on
// placement time, then order id, making the ordering total and deterministic.
func (b QueueBuilder) Build(
	orders []*order.Order,
	roster tenant.Roster,
	jobs []*deliveryjob.DeliveryJob,
	now time.Time,
) (queue, changed []*order.Order, err error) {
	changed, err = b.evaluator.Evaluate(orders, roster, now)
	if err != nil {
		return nil, nil, err
	}

	claimed, err := ordersClaimedByActiveJobs(jobs)
	if err != nil {
		return nil, nil, err
	}

	queue = make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if !b.eligibility.IsEligible(o, roster, now) {
			continue
		}

		if o.Courier() != nil {
			continue
		}

		if claimed[o.ID()] {
			continue
		}

		queue = append(queue, o)
	}

	slices.SortStableFunc(queue, compareQueueOrder)

	return queue, changed, nil
}

// ordersClaimedByActiveJobs collects the ids of all orders referenced by a
// delivery job that is not Done or Canceled.
func ordersClaimedByActiveJobs(jobs []*deliveryjob.DeliveryJob) (map[kernel.UUID]bool, error) {
	claimed := make(map[kernel.UUID]bool)

	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}

		if !j.IsActive() {
			continue
		}

		for _, item := range j.Items() {
			claimed[item.OrderID] = true
		}
	}

	return claimed, nil
}

// compareQueueOrder is the total-order comparator for the dispatch queue.
// A missing expected ready time sorts as if infinitely far in the future.
func compareQueueOrder(a, b *order.Order) int {
	if c := compareReadyAt(a.ReadyAt(), b.ReadyAt()); c != 0 {
		return c
	}

	if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
		return c
	}

	return strings.Compare(a.ID().String(), b.ID().String())
}

// compareReadyAt compares two optional ready times, treating nil as +infinity.
func compareReadyAt(a, b *time.Time) int {
	switch {
	case a != nil && b != nil:
		return a.Compare(*b)
	case a != nil:
		return -1
	case b != nil:
		return 1
	default:
		return 0
	}
}
