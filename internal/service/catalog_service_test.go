package service

import (
	"context"
	"testing"

	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSellingPriceFollowsDiscount(t *testing.T) {
	env := newTestEnv(t)
	category := env.createCategory(t, "Electronics")

	product, err := env.productSvc.Create(ProductInput{
		Name:          "Headphones",
		MRP:           models.MustMoney("2000"),
		Discount:      models.MustMoney("15"),
		StockQuantity: 4,
		CategoryID:    category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "1700.00", product.SellingPrice.String())

	updated, err := env.productSvc.Update(product.ID, ProductInput{
		Name:          "Headphones",
		MRP:           models.MustMoney("2000"),
		Discount:      models.MustMoney("12.5"),
		StockQuantity: 4,
		CategoryID:    category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "1750.00", updated.SellingPrice.String())
	assert.Equal(t, "1750.00", env.reloadProduct(t, product.ID).SellingPrice.String())

	_, err = env.productSvc.Create(ProductInput{Name: "Orphan", MRP: models.MustMoney("1"), CategoryID: 999})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestProductDeleteKeepsOrderSnapshot(t *testing.T) {
	env := newTestEnv(t)
	category := env.createCategory(t, "Clothing")
	user := env.createUser(t, "buyer")
	shirt := env.createProduct(t, category.ID, "Shirt", "40", 3)
	order, err := env.orderSvc.PlaceOrder(PlaceOrderInput{
		UserID:          user.ID,
		Items:           []PlaceOrderItem{{ProductID: shirt.ID, Quantity: 1}},
		TotalAmount:     models.MustMoney("40"),
		ShippingAddress: "1 Main St",
		PaymentMethod:   "cod",
	})
	require.NoError(t, err)

	require.NoError(t, env.productSvc.Delete(shirt.ID))
	_, err = env.productSvc.Get(shirt.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	products, total, err := env.productSvc.List(repository.ProductListFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, products)

	reloaded, err := env.orders.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	require.NotNil(t, reloaded.Items[0].Product)
	assert.Equal(t, "Shirt", reloaded.Items[0].Product.Name)
}

func TestCategoryLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	category, err := env.categorySvc.Create(ctx, CategoryInput{Name: "Books"})
	require.NoError(t, err)
	_, err = env.categorySvc.Create(ctx, CategoryInput{Name: "Books"})
	assert.ErrorIs(t, err, ErrCategoryExists)

	env.createProduct(t, category.ID, "Novel", "10", 1)
	assert.ErrorIs(t, env.categorySvc.Delete(ctx, category.ID), ErrCategoryInUse)

	empty, err := env.categorySvc.Create(ctx, CategoryInput{Name: "Toys"})
	require.NoError(t, err)
	require.NoError(t, env.categorySvc.Delete(ctx, empty.ID))

	categories, err := env.categorySvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Books", categories[0].Name)
}

func TestBannerPublicListOrderAndLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := NewBannerService(repository.NewBannerRepository(env.db))
	ctx := context.Background()
	inactive := false

	second, err := svc.Create(ctx, BannerInput{Title: "Second", ImageURL: "/b.png", SortOrder: 2})
	require.NoError(t, err)
	first, err := svc.Create(ctx, BannerInput{Title: "First", ImageURL: "/a.png", SortOrder: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, BannerInput{Title: "Hidden", ImageURL: "/c.png", IsActive: &inactive})
	require.NoError(t, err)

	banners, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, first.ID, banners[0].ID)
	assert.Equal(t, second.ID, banners[1].ID)

	updated, err := svc.Update(ctx, second.ID, BannerInput{Title: " Renamed ", ImageURL: "/b.png", IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.False(t, updated.IsActive)

	require.NoError(t, svc.Delete(ctx, first.ID))
	assert.ErrorIs(t, svc.Delete(ctx, first.ID), ErrBannerNotFound)
	_, err = svc.Update(ctx, 9999, BannerInput{Title: "x", ImageURL: "/x.png"})
	assert.ErrorIs(t, err, ErrBannerNotFound)

	banners, err = svc.ListPublic(ctx)
	require.NoError(t, err)
	assert.Empty(t, banners)
}
