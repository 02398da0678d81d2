package cmd

import (
	"strconv"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	policy      services.DispatchPolicy
	marketLocks *commands.MarketLocks
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:      buildDispatchPolicy(configs),
		marketLocks: commands.NewMarketLocks(),
	}
}

func (c *CompositionRoot) DispatchPolicy() services.DispatchPolicy {
	return c.policy
}

func (c *CompositionRoot) CreateRegisterTenantCommandHandler() commands.RegisterTenantCommandHandler {
	var f commands.TenantUoWFactory = FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTenantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateEvaluateFallbackCommandHandler() commands.EvaluateFallbackCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEvaluateFallbackCommandHandler(f, c.policy, c.marketLocks)
}

func (c *CompositionRoot) CreateBuildDispatchQueueCommandHandler() commands.BuildDispatchQueueCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewBuildDispatchQueueCommandHandler(f, c.policy, c.marketLocks)
}

func (c *CompositionRoot) CreateGetDispatchableOrdersQueryHandler() queries.GetDispatchableOrdersQueryHandler {
	return queries.NewGetDispatchableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMarketsQueryHandler() queries.GetMarketsQueryHandler {
	return queries.NewGetMarketsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckBatchQueryHandler() queries.CheckBatchQueryHandler {
	return queries.NewCheckBatchQueryHandler(c.gormDB, c.policy)
}

// buildDispatchPolicy applies the optional per-window minute overrides on
// top of the default policy. Unparsable or non-positive values are ignored.
func buildDispatchPolicy(configs Config) services.DispatchPolicy {
	policy := services.DefaultDispatchPolicy()

	overrideWindow(&policy.NearReadyWindow, configs.NearReadyWindowMin)
	overrideWindow(&policy.RestaurantReadyFallback, configs.RestaurantReadyFallbackMin)
	overrideWindow(&policy.RestaurantNearReadyFallback, configs.RestaurantNearReadyFallbackMin)
	overrideWindow(&policy.ShopServiceFallback, configs.ShopServiceFallbackMin)
	overrideWindow(&policy.BatchWindow, configs.BatchWindowMin)

	return policy
}

func overrideWindow(window *time.Duration, minutes string) {
	if minutes == "" {
		return
	}

	parsed, err := strconv.Atoi(minutes)
	if err != nil || parsed <= 0 {
		return
	}

	*window = time.Duration(parsed) * time.Minute
}

type FuncTenantUoWFactory func() commands.TenantUoW

func (f FuncTenantUoWFactory) Create() commands.TenantUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
