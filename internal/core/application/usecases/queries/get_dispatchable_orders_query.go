package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDispatchableOrdersQueryIsNotConstructed = errors.New(
	"GetDispatchableOrdersQuery must be created via NewGetDispatchableOrdersQuery constructor",
)

// GetDispatchableOrdersQuery retrieves the market-assigned delivery orders
// of one market that are still open. This is the monitoring view behind the
// dispatch queue: it applies no readiness windowing, only the hard filters.
//
// Example:
//
//	query, err := NewGetDispatchableOrdersQuery(marketID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDispatchableOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetDispatchableOrdersQuery struct { //nolint:recvcheck //using for validation
	marketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDispatchableOrdersQuery creates a query scoped to one market.
func NewGetDispatchableOrdersQuery(marketID kernel.UUID) (GetDispatchableOrdersQuery, error) {
	q := GetDispatchableOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := marketID.Validate(); err != nil {
		return GetDispatchableOrdersQuery{}, err
	}
	q.marketID = marketID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchableOrdersQueryIsNotConstructed)
}

// MarketID returns the market the query is scoped to.
func (q GetDispatchableOrdersQuery) MarketID() kernel.UUID {
	return q.marketID
}

// GetDispatchableOrdersQueryResponse is one open market-assigned order.
type GetDispatchableOrdersQueryResponse struct {
	ID        kernel.UUID
	TenantID  kernel.UUID
	Status    string
	ReadyAt   *time.Time
	CreatedAt time.Time
}
