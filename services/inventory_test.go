package services_test

import (
	"testing"

	"github.com/Wekesa/sokoni-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerReserve(t *testing.T) {
	db := newTestDB(t)
	ledger := services.NewInventoryLedger()
	product := createProduct(t, db, "Widget", 9.99, 4)

	t.Run("within stock", func(t *testing.T) {
		assert.NoError(t, ledger.Reserve(db, product.ID, 4))
	})

	t.Run("does not mutate stock", func(t *testing.T) {
		require.NoError(t, ledger.Reserve(db, product.ID, 2))
		assert.Equal(t, 4, productStock(t, db, product.ID))
	})

	t.Run("insufficient", func(t *testing.T) {
		err := ledger.Reserve(db, product.ID, 5)
		require.ErrorIs(t, err, services.ErrInsufficientStock)

		var stockErr *services.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, product.ID, stockErr.ProductID)
		assert.Equal(t, "Widget", stockErr.ProductName)
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 4, stockErr.Available)
	})

	t.Run("unknown product", func(t *testing.T) {
		assert.ErrorIs(t, ledger.Reserve(db, 999, 1), services.ErrNotFound)
	})
}

func TestLedgerCommit(t *testing.T) {
	db := newTestDB(t)
	ledger := services.NewInventoryLedger()
	product := createProduct(t, db, "Widget", 9.99, 4)

	t.Run("decrements stock", func(t *testing.T) {
		require.NoError(t, ledger.Commit(db, product.ID, 3))
		assert.Equal(t, 1, productStock(t, db, product.ID))
	})

	t.Run("refuses to go negative", func(t *testing.T) {
		err := ledger.Commit(db, product.ID, 2)
		require.ErrorIs(t, err, services.ErrInsufficientStock)
		assert.Equal(t, 1, productStock(t, db, product.ID), "a refused commit must not change stock")
	})

	t.Run("can drain to zero", func(t *testing.T) {
		require.NoError(t, ledger.Commit(db, product.ID, 1))
		assert.Equal(t, 0, productStock(t, db, product.ID))
	})

	t.Run("unknown product", func(t *testing.T) {
		assert.ErrorIs(t, ledger.Commit(db, 999, 1), services.ErrNotFound)
	})
}
