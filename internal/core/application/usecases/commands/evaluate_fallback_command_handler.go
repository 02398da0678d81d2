package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/core/domain/services"
)

// ErrNoTenantsInMarket is returned when a market has no registered tenants,
// so there is nothing to evaluate. Callers that sweep all markets treat it
// as an expected condition.
var ErrNoTenantsInMarket = errors.New("no tenants in market")

// EvaluateFallbackCommandHandler runs the fallback evaluation for one market
// and persists every order whose delivery responsibility moved to the market.
//
// Runs for the same market are serialized through MarketLocks so that two
// overlapping sweeps cannot write back conflicting snapshots.
type EvaluateFallbackCommandHandler struct {
	uowFactory OrderUoWFactory
	evaluator  services.FallbackEvaluator
	locks      *MarketLocks
}

// NewEvaluateFallbackCommandHandler creates a handler for fallback sweeps.
// The locks instance must be shared with every other handler that mutates
// market order state.
func NewEvaluateFallbackCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.DispatchPolicy,
	locks *MarketLocks,
) EvaluateFallbackCommandHandler {
	return EvaluateFallbackCommandHandler{
		uowFactory: uowFactory,
		evaluator:  services.NewFallbackEvaluator(policy),
		locks:      locks,
	}
}

// Handle processes one fallback sweep.
// Loads the market's tenants and their orders inside a transaction,
// evaluates the fallback rules against the current time, and updates
// only the orders the evaluation changed.
func (h *EvaluateFallbackCommandHandler) Handle(ctx context.Context, cmd EvaluateFallbackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.MarketID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenants, err := uow.TenantRepository().GetAllByMarket(ctx, cmd.MarketID())
	if err != nil {
		return err
	}

	if len(tenants) == 0 {
		return ErrNoTenantsInMarket
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllByTenants(ctx, tenantIDs(tenants))
	if err != nil {
		return err
	}

	changed, err := h.evaluator.Evaluate(orders, tenant.NewRoster(tenants), time.Now().UTC())
	if err != nil {
		return err
	}

	for _, o := range changed {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func tenantIDs(tenants []*tenant.Tenant) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(tenants))
	for _, t := range tenants {
		ids = append(ids, t.ID())
	}

	return ids
}
