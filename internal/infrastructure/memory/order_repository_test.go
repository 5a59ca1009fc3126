package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshop/backend/internal/domain/catalog"
	"github.com/eshop/backend/internal/domain/order"
	"github.com/eshop/backend/internal/domain/shared"
	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

func validatedCart(t *testing.T, email string) *order.Cart {
	t.Helper()

	acc := newUser(t, email)

	cart, err := order.NewCart(acc)
	require.NoError(t, err)

	laptop := catalog.NewProduct(0, "Laptop HP", "", valueobject.NewMoneyEURFromFloat(799.99))
	require.NoError(t, cart.AddItem(laptop, 1))
	require.NoError(t, cart.Validate())

	return cart
}

func TestOrderRepositorySave(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential IDs from one", func(t *testing.T) {
		repo := NewOrderRepository()

		first := validatedCart(t, "a@example.com")
		second := validatedCart(t, "b@example.com")
		third := validatedCart(t, "a@example.com")

		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))
		require.NoError(t, repo.Save(ctx, third))

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
		assert.Equal(t, int64(3), third.ID)
	})

	t.Run("a cart cannot be saved twice", func(t *testing.T) {
		repo := NewOrderRepository()
		cart := validatedCart(t, "a@example.com")
		require.NoError(t, repo.Save(ctx, cart))

		err := repo.Save(ctx, cart)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestOrderRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	cart := validatedCart(t, "a@example.com")
	require.NoError(t, repo.Save(ctx, cart))

	t.Run("found", func(t *testing.T) {
		found, err := repo.FindByID(ctx, cart.ID)
		require.NoError(t, err)
		assert.Same(t, cart, found)
	})

	t.Run("missing", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 99)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, found)
	})
}

func TestOrderRepositoryFindByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	first := validatedCart(t, "a@example.com")
	second := validatedCart(t, "b@example.com")
	third := validatedCart(t, "a@example.com")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, third))

	orders, err := repo.FindByCustomer(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, int64(3), orders[1].ID)

	none, err := repo.FindByCustomer(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepositoryStatusVisibility(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	cart := validatedCart(t, "a@example.com")
	require.NoError(t, repo.Save(ctx, cart))

	// the ledger stores pointers, so a delivery after save is visible
	require.NoError(t, cart.Deliver())

	found, err := repo.FindByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.True(t, found.IsDelivered())
}
