package commands_test

import (
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShopTenant(t *testing.T, prepTimeMin int) *tenant.Tenant {
	t.Helper()

	marketID := kernel.NewUUID()
	shop, err := tenant.NewTenant(
		kernel.NewUUID(), "Corner Shop", tenant.Shop, &marketID, true, tenant.Mixed, prepTimeMin,
	)
	require.NoError(t, err)

	return shop
}

func newRestaurantTenant(t *testing.T, prepTimeMin int) *tenant.Tenant {
	t.Helper()

	marketID := kernel.NewUUID()
	restaurant, err := tenant.NewTenant(
		kernel.NewUUID(), "Trattoria", tenant.Restaurant, &marketID, true, tenant.Mixed, prepTimeMin,
	)
	require.NoError(t, err)

	return restaurant
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	shop := newShopTenant(t, 15)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, shop.ID(), order.Delivery, 20)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tenantRepo := new(MockTenantRepository)
	uow := new(MockUoW)

	var created *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Get", ctx, shop.ID()).Return(shop, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*order.Order)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, orderID, created.ID())
	assert.Equal(t, order.New, created.Status())
	assert.Equal(t, 20, created.PrepTimeMin())
	assert.Nil(t, created.ReadyAt(), "shop orders carry no projected ready time")
	orderRepo.AssertExpectations(t)
	tenantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RestaurantGetsReadyProjection(t *testing.T) {
	ctx := t.Context()

	restaurant := newRestaurantTenant(t, 25)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), restaurant.ID(), order.Delivery, 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tenantRepo := new(MockTenantRepository)
	uow := new(MockUoW)

	var created *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Get", ctx, restaurant.ID()).Return(restaurant, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*order.Order)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 25, created.PrepTimeMin(), "zero prep time falls back to the tenant default")
	require.NotNil(t, created.ReadyAt())
	assert.Equal(t, created.CreatedAt().Add(25*time.Minute), *created.ReadyAt())
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_TenantNotFound(t *testing.T) {
	ctx := t.Context()

	tenantID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), tenantID, order.Delivery, 10)
	require.NoError(t, err)

	tenantRepo := new(MockTenantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Get", ctx, tenantID).
			Return(nil, errs.NewObjectNotFoundError("tenantID", tenantID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTenantNotFound)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.Pickup, 10)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}
