package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

type TxManager interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type OrderRepoFactory interface {
	OrderRepository() ports.OrderRepository
}

type TenantRepoFactory interface {
	TenantRepository() ports.TenantRepository
}

type DeliveryJobRepoFactory interface {
	DeliveryJobRepository() ports.DeliveryJobRepository
}

// TenantUoW is enough for handlers that only touch tenants.
type TenantUoW interface {
	TxManager
	TenantRepoFactory
}

type TenantUoWFactory interface {
	Create() TenantUoW
}

// OrderUoW covers handlers that mutate orders and read the tenant roster.
type OrderUoW interface {
	TxManager
	OrderRepoFactory
	TenantRepoFactory
}

type OrderUoWFactory interface {
	Create() OrderUoW
}

// UoW exposes every repository of the dispatch store.
type UoW interface {
	TxManager
	OrderRepoFactory
	TenantRepoFactory
	DeliveryJobRepoFactory
}

type UoWFactory interface {
	Create() UoW
}
