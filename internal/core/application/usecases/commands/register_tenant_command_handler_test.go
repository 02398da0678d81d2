package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterTenantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	tenantID := kernel.NewUUID()
	marketID := kernel.NewUUID()
	cmd, err := commands.NewRegisterTenantCommand(
		tenantID, "Trattoria", tenant.Restaurant, &marketID, true, tenant.Mixed, 20,
	)
	require.NoError(t, err)

	tenantRepo := new(MockTenantRepository)
	uow := new(MockUoW)

	var registered *tenant.Tenant
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Add", ctx, mock.AnythingOfType("*tenant.Tenant")).
			Run(func(args mock.Arguments) {
				registered = args.Get(1).(*tenant.Tenant)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTenantUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterTenantCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, registered)
	assert.Equal(t, tenantID, registered.ID())
	assert.Equal(t, tenant.Restaurant, registered.Type())
	assert.True(t, registered.AllowsMarketCourierFallback())
	assert.True(t, registered.BelongsToMarket(marketID))
	tenantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterTenantCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterTenantCommand{} // not constructed properly

	factory := new(MockTenantUoWFactory)
	handler := commands.NewRegisterTenantCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterTenantCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterTenantCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterTenantCommand(
		kernel.NewUUID(), "Corner Shop", tenant.Shop, nil, false, tenant.SelfDelivery, 0,
	)
	require.NoError(t, err)

	tenantRepo := new(MockTenantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Add", ctx, mock.AnythingOfType("*tenant.Tenant")).
			Return(errors.New("duplicate key")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTenantUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterTenantCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "duplicate key")
}

func TestNewRegisterTenantCommand_Invalid(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewRegisterTenantCommand(
			kernel.NewUUID(), "", tenant.Shop, nil, false, tenant.SelfDelivery, 0,
		)
		require.ErrorIs(t, err, commands.ErrTenantNameIsRequired)
	})

	t.Run("negative prep time", func(t *testing.T) {
		_, err := commands.NewRegisterTenantCommand(
			kernel.NewUUID(), "Corner Shop", tenant.Shop, nil, false, tenant.SelfDelivery, -1,
		)
		require.ErrorIs(t, err, commands.ErrPrepTimeIsNegative)
	})

	t.Run("unknown tenant type", func(t *testing.T) {
		_, err := commands.NewRegisterTenantCommand(
			kernel.NewUUID(), "Corner Shop", tenant.TypeUnknown, nil, false, tenant.SelfDelivery, 0,
		)
		require.Error(t, err)
	})
}
