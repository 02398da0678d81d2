package commands_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/deliveryjob"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByTenants(
	ctx context.Context,
	tenantIDs []kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, tenantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTenantRepository struct{ mock.Mock }

func (m *MockTenantRepository) Add(ctx context.Context, t *tenant.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

func (m *MockTenantRepository) GetAllByMarket(
	ctx context.Context,
	marketID kernel.UUID,
) ([]*tenant.Tenant, error) {
	args := m.Called(ctx, marketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tenant.Tenant), args.Error(1)
}

type MockDeliveryJobRepository struct{ mock.Mock }

func (m *MockDeliveryJobRepository) Add(ctx context.Context, j *deliveryjob.DeliveryJob) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockDeliveryJobRepository) Update(ctx context.Context, j *deliveryjob.DeliveryJob) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockDeliveryJobRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryjob.DeliveryJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryjob.DeliveryJob), args.Error(1)
}

func (m *MockDeliveryJobRepository) GetAllActive(ctx context.Context) ([]*deliveryjob.DeliveryJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deliveryjob.DeliveryJob), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TenantRepository() ports.TenantRepository {
	args := m.Called()
	return args.Get(0).(ports.TenantRepository)
}

func (m *MockUoW) DeliveryJobRepository() ports.DeliveryJobRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryJobRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTenantUoWFactory struct{ mock.Mock }

func (m *MockTenantUoWFactory) Create() commands.TenantUoW {
	args := m.Called()
	return args.Get(0).(commands.TenantUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
