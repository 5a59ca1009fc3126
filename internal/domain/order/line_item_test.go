package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshop/backend/internal/domain/catalog"
	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

func priced(id int64, name string, price float64) *catalog.Product {
	money := valueobject.NewMoneyEURFromFloat(price)
	return catalog.NewProduct(id, name, "", money)
}

func TestNewLineItem(t *testing.T) {
	t.Run("snapshots product name and price", func(t *testing.T) {
		laptop := priced(0, "Laptop HP", 799.99)

		item, err := NewLineItem(laptop, 2)
		require.NoError(t, err)

		assert.Equal(t, int64(0), item.ProductID)
		assert.Equal(t, "Laptop HP", item.ProductName)
		assert.Equal(t, 2, item.Quantity)
		assert.True(t, item.UnitPrice.Equals(laptop.Price))
		assert.NotEqual(t, "", item.ID.String())
	})

	t.Run("rejects nil product", func(t *testing.T) {
		item, err := NewLineItem(nil, 1)
		assert.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		laptop := priced(0, "Laptop HP", 799.99)

		for _, quantity := range []int{0, -1} {
			item, err := NewLineItem(laptop, quantity)
			assert.Error(t, err)
			assert.Nil(t, item)
		}
	})
}

func TestLineItemFrozenPrice(t *testing.T) {
	t.Run("survives later product price change", func(t *testing.T) {
		laptop := priced(0, "Laptop HP", 799.99)
		item, err := NewLineItem(laptop, 1)
		require.NoError(t, err)

		newPrice := valueobject.NewMoneyEURFromFloat(999.99)
		laptop.SetPrice(newPrice)

		assert.Equal(t, "799.99 EUR", item.UnitPrice.String())
	})

	t.Run("refresh picks up the current price", func(t *testing.T) {
		laptop := priced(0, "Laptop HP", 799.99)
		item, err := NewLineItem(laptop, 1)
		require.NoError(t, err)

		newPrice := valueobject.NewMoneyEURFromFloat(999.99)
		laptop.SetPrice(newPrice)

		require.NoError(t, item.RefreshPrice(laptop))
		assert.Equal(t, "999.99 EUR", item.UnitPrice.String())
	})

	t.Run("refresh rejects a different product", func(t *testing.T) {
		laptop := priced(0, "Laptop HP", 799.99)
		phone := priced(1, "Smartphone Samsung", 599.99)

		item, err := NewLineItem(laptop, 1)
		require.NoError(t, err)

		assert.Error(t, item.RefreshPrice(phone))
		assert.Error(t, item.RefreshPrice(nil))
		assert.Equal(t, "799.99 EUR", item.UnitPrice.String())
	})
}

func TestLineItemQuantity(t *testing.T) {
	t.Run("set replaces the quantity", func(t *testing.T) {
		item, err := NewLineItem(priced(0, "Laptop HP", 799.99), 1)
		require.NoError(t, err)

		require.NoError(t, item.SetQuantity(5))
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("set rejects non-positive values", func(t *testing.T) {
		item, err := NewLineItem(priced(0, "Laptop HP", 799.99), 3)
		require.NoError(t, err)

		assert.Error(t, item.SetQuantity(0))
		assert.Error(t, item.SetQuantity(-2))
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("add accumulates", func(t *testing.T) {
		item, err := NewLineItem(priced(0, "Laptop HP", 799.99), 1)
		require.NoError(t, err)

		require.NoError(t, item.AddQuantity(2))
		assert.Equal(t, 3, item.Quantity)
	})
}

func TestLineItemTotalPrice(t *testing.T) {
	item, err := NewLineItem(priced(1, "Smartphone Samsung", 599.99), 2)
	require.NoError(t, err)

	assert.Equal(t, "1199.98 EUR", item.TotalPrice().String())
}
