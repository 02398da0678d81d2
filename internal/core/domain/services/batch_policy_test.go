package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchPolicy_CanBatch(t *testing.T) {
	now := time.Now()
	marketID := kernel.NewUUID()

	restaurantA := buildTenant(t, tenant.Restaurant, marketID, true)
	restaurantB := buildTenant(t, tenant.Restaurant, marketID, true)
	shop := buildTenant(t, tenant.Shop, marketID, true)
	service := buildTenant(t, tenant.Service, marketID, true)
	roster := tenant.NewRoster([]*tenant.Tenant{restaurantA, restaurantB, shop, service})

	batch := services.NewBatchPolicy(services.DefaultDispatchPolicy())

	// canBatch asserts the predicate together with its symmetry property.
	canBatch := func(t *testing.T, a, b *order.Order) bool {
		t.Helper()

		got, err := batch.CanBatch(a, b, roster)
		require.NoError(t, err)

		mirrored, err := batch.CanBatch(b, a, roster)
		require.NoError(t, err)
		require.Equal(t, got, mirrored, "canBatch must be symmetric")

		return got
	}

	t.Run("same kitchen with ready times inside the window batches", func(t *testing.T) {
		a := buildOrder(t, orderSpec{tenantID: restaurantA.ID(), readyAt: timePtr(now)})
		b := buildOrder(t, orderSpec{tenantID: restaurantA.ID(), readyAt: timePtr(now.Add(5 * time.Minute))})

		assert.True(t, canBatch(t, a, b))
	})

	t.Run("same kitchen with ready times outside the window does not batch", func(t *testing.T) {
		a := buildOrder(t, orderSpec{tenantID: restaurantA.ID(), readyAt: timePtr(now)})
		b := buildOrder(t, orderSpec{tenantID: restaurantA.ID(), readyAt: timePtr(now.Add(8 * time.Minute))})

		assert.False(t, canBatch(t, a, b))
	})

	t.Run("different kitchens never batch even with identical ready times", func(t *testing.T) {
		a := buildOrder(t, orderSpec{tenantID: restaurantA.ID(), readyAt: timePtr(now)})
		b := buildOrder(t, orderSpec{tenantID: restaurantB.ID(), readyAt: timePtr(now)})

		assert.False(t, canBatch(t, a, b))
	})

	t.Run("same kitchen without ready times batches only when both ready", func(t *testing.T) {
		a := buildOrder(t, orderSpec{tenantID: restaurantA.ID(), status: order.Ready})
		b := buildOrder(t, orderSpec{tenantID: restaurantA.ID(), status: order.Ready})
		assert.True(t, canBatch(t, a, b))

		c := buildOrder(t, orderSpec{tenantID: restaurantA.ID(), status: order.Preparing})
		assert.False(t, canBatch(t, a, c))
	})

	t.Run("restaurant and shop from different tenants never batch", func(t *testing.T) {
		a := buildOrder(t, orderSpec{tenantID: restaurantA.ID(), readyAt: timePtr(now)})
		b := buildOrder(t, orderSpec{tenantID: shop.ID()})

		assert.False(t, canBatch(t, a, b))
	})

	t.Run("shop and service orders batch freely across tenants", func(t *testing.T) {
		a := buildOrder(t, orderSpec{tenantID: shop.ID(), status: order.New})
		b := buildOrder(t, orderSpec{tenantID: service.ID(), status: order.Preparing})

		assert.True(t, canBatch(t, a, b))
	})

	t.Run("unresolved tenants default to shop and batch freely", func(t *testing.T) {
		a := buildOrder(t, orderSpec{tenantID: kernel.NewUUID()})
		b := buildOrder(t, orderSpec{tenantID: kernel.NewUUID()})

		assert.True(t, canBatch(t, a, b))
	})

	t.Run("unconstructed order fails the check", func(t *testing.T) {
		a := buildOrder(t, orderSpec{tenantID: shop.ID()})
		var bad order.Order

		_, err := batch.CanBatch(a, &bad, roster)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
