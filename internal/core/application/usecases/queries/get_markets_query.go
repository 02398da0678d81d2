package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetMarketsQueryIsNotConstructed = errors.New(
	"GetMarketsQuery must be created via NewGetMarketsQuery constructor",
)

// GetMarketsQuery lists every market that has at least one listed tenant.
// The background fallback sweep fans out over this list.
type GetMarketsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMarketsQuery creates a parameterless market listing query.
func NewGetMarketsQuery() GetMarketsQuery {
	return GetMarketsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMarketsQuery) Validate() error {
	return q.guard.Validate(ErrGetMarketsQueryIsNotConstructed)
}

// GetMarketsQueryResponse is one market known to the dispatch store.
type GetMarketsQueryResponse struct {
	MarketID kernel.UUID
}
