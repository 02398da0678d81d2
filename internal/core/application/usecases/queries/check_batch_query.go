package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCheckBatchQueryIsNotConstructed = errors.New(
		"CheckBatchQuery must be created via NewCheckBatchQuery constructor",
	)
	ErrSameOrderInBatchCheck = errors.New("batch check requires two distinct orders")
)

// CheckBatchQuery asks whether two orders may share one delivery job.
//
// Example:
//
//	query, err := NewCheckBatchQuery(orderA, orderB)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCheckBatchQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
type CheckBatchQuery struct { //nolint:recvcheck //using for validation
	orderA kernel.UUID
	orderB kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckBatchQuery creates a batch compatibility query for two orders.
// The two ids must be valid and distinct.
func NewCheckBatchQuery(orderA, orderB kernel.UUID) (CheckBatchQuery, error) {
	q := CheckBatchQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderA.Validate(), orderB.Validate()); err != nil {
		return CheckBatchQuery{}, err
	}

	if orderA.IsEqual(orderB) {
		return CheckBatchQuery{}, ErrSameOrderInBatchCheck
	}

	q.orderA = orderA
	q.orderB = orderB

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckBatchQuery) Validate() error {
	return q.guard.Validate(ErrCheckBatchQueryIsNotConstructed)
}

// OrderA returns the first order id.
func (q CheckBatchQuery) OrderA() kernel.UUID {
	return q.orderA
}

// OrderB returns the second order id.
func (q CheckBatchQuery) OrderB() kernel.UUID {
	return q.orderB
}

// CheckBatchQueryResponse reports whether the two orders may be batched.
type CheckBatchQueryResponse struct {
	Compatible bool
}
