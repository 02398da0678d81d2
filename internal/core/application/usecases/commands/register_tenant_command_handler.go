package commands

import (
	"context"

	"dispatch/internal/core/domain/model/tenant"
)

// RegisterTenantCommandHandler handles tenant registration.
type RegisterTenantCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewRegisterTenantCommandHandler creates a handler for tenant registration.
func NewRegisterTenantCommandHandler(uowFactory TenantUoWFactory) RegisterTenantCommandHandler {
	return RegisterTenantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tenant registration command.
func (h *RegisterTenantCommandHandler) Handle(ctx context.Context, cmd RegisterTenantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newTenant, err := tenant.NewTenant(
		cmd.TenantID(),
		cmd.Name(),
		cmd.TenantType(),
		cmd.MarketID(),
		cmd.AllowFallback(),
		cmd.ProviderMode(),
		cmd.DefaultPrepTimeMin(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TenantRepository().Add(ctx, newTenant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
