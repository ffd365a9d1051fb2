package service

import (
	"testing"

	"github.com/shopfront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemTwiceMergesRow(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "shopper")
	product := env.createProduct(t, 1, "Mug", "12", 5)

	_, err := env.cartSvc.AddItem(user.ID, product.ID, 1)
	require.NoError(t, err)
	item, err := env.cartSvc.AddItem(user.ID, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	items, err := env.cartSvc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItemRejectsBeyondStock(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "shopper")
	product := env.createProduct(t, 1, "Mug", "12", 2)

	_, err := env.cartSvc.AddItem(user.ID, product.ID, 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = env.cartSvc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)
	_, err = env.cartSvc.AddItem(user.ID, product.ID, 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = env.cartSvc.AddItem(user.ID, 404, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = env.cartSvc.AddItem(user.ID, product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner")
	other := env.createUser(t, "other")
	product := env.createProduct(t, 1, "Mug", "12", 5)
	item, err := env.cartSvc.AddItem(owner.ID, product.ID, 1)
	require.NoError(t, err)

	_, err = env.cartSvc.UpdateItem(other.ID, item.ID, 2)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	_, err = env.cartSvc.UpdateItem(owner.ID, item.ID, 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	updated, err := env.cartSvc.UpdateItem(owner.ID, item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	require.NoError(t, env.cartSvc.RemoveItem(other.ID, item.ID))
	items, err := env.cartSvc.List(owner.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, env.cartSvc.RemoveItem(owner.ID, item.ID))
	require.NoError(t, env.cartSvc.RemoveItem(owner.ID, item.ID))
	items, err = env.cartSvc.List(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClearCart(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "shopper")
	for _, name := range []string{"A", "B"} {
		product := env.createProduct(t, 1, name, "1", 5)
		_, err := env.cartSvc.AddItem(user.ID, product.ID, 1)
		require.NoError(t, err)
	}

	require.NoError(t, env.cartSvc.Clear(user.ID))
	var count int64
	require.NoError(t, env.db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWishlistRejectsDuplicate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWishlistService(env.wishlists, env.products)
	user := env.createUser(t, "shopper")
	product := env.createProduct(t, 1, "Mug", "12", 5)

	item, err := svc.Add(user.ID, product.ID)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, product.ID)
	assert.ErrorIs(t, err, ErrWishlistItemExists)

	require.NoError(t, svc.Remove(user.ID, item.ID))
	assert.ErrorIs(t, svc.Remove(user.ID, item.ID), ErrWishlistItemNotFound)
}
