package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDispatchableOrdersQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		marketID := kernel.NewUUID()
		query, err := queries.NewGetDispatchableOrdersQuery(marketID)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, marketID, query.MarketID())
	})

	t.Run("empty market id", func(t *testing.T) {
		_, err := queries.NewGetDispatchableOrdersQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetDispatchableOrdersQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetDispatchableOrdersQueryIsNotConstructed)
	})
}

func TestNewGetMarketsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query := queries.NewGetMarketsQuery()
		require.NoError(t, query.Validate())
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetMarketsQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetMarketsQueryIsNotConstructed)
	})
}

func TestNewCheckBatchQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderA := kernel.NewUUID()
		orderB := kernel.NewUUID()
		query, err := queries.NewCheckBatchQuery(orderA, orderB)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, orderA, query.OrderA())
		assert.Equal(t, orderB, query.OrderB())
	})

	t.Run("same order twice", func(t *testing.T) {
		orderID := kernel.NewUUID()
		_, err := queries.NewCheckBatchQuery(orderID, orderID)
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrSameOrderInBatchCheck)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := queries.NewCheckBatchQuery(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.CheckBatchQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrCheckBatchQueryIsNotConstructed)
	})
}
