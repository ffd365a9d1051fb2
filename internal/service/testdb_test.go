package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/queue"
	"github.com/shopfront/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	cfg         *config.Config
	products    *repository.GormProductRepository
	categories  *repository.GormCategoryRepository
	coupons     *repository.GormCouponRepository
	usages      *repository.GormCouponUsageRepository
	orders      *repository.GormOrderRepository
	carts       *repository.GormCartRepository
	wishlists   *repository.GormWishlistRepository
	users       *repository.GormUserRepository
	couponSvc   *CouponService
	orderSvc    *OrderService
	cartSvc     *CartService
	authSvc     *AuthService
	userAdmin   *UserAdminService
	productSvc  *ProductService
	categorySvc *CategoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-unit-tests"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordPolicy.MinLength = 6

	env := &testEnv{
		db:         db,
		cfg:        cfg,
		products:   repository.NewProductRepository(db),
		categories: repository.NewCategoryRepository(db),
		coupons:    repository.NewCouponRepository(db),
		usages:     repository.NewCouponUsageRepository(db),
		orders:     repository.NewOrderRepository(db),
		carts:      repository.NewCartRepository(db),
		wishlists:  repository.NewWishlistRepository(db),
		users:      repository.NewUserRepository(db),
	}
	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	require.NoError(t, err)

	env.couponSvc = NewCouponService(env.coupons, env.orders)
	env.orderSvc = NewOrderService(OrderServiceOptions{
		OrderRepo:       env.orders,
		ProductRepo:     env.products,
		CouponRepo:      env.coupons,
		CouponUsageRepo: env.usages,
		CartRepo:        env.carts,
		CouponService:   env.couponSvc,
		QueueClient:     queueClient,
	})
	env.cartSvc = NewCartService(env.carts, env.products)
	env.authSvc = NewAuthService(cfg, env.users)
	env.userAdmin = NewUserAdminService(env.users, env.authSvc)
	env.productSvc = NewProductService(env.products, env.categories)
	env.categorySvc = NewCategoryService(env.categories)
	return env
}

func (e *testEnv) createCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, e.db.Create(category).Error)
	return category
}

func (e *testEnv) createProduct(t *testing.T, categoryID uint, name, mrp string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:    categoryID,
		Name:          name,
		MRP:           models.MustMoney(mrp),
		StockQuantity: stock,
	}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         constants.RoleUser,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

type couponFixture func(*models.Coupon)

func (e *testEnv) createCoupon(t *testing.T, code string, opts ...couponFixture) *models.Coupon {
	t.Helper()
	now := time.Now()
	coupon := &models.Coupon{
		Code:          code,
		Name:          code,
		DiscountType:  constants.DiscountTypePercentage,
		DiscountValue: models.MustMoney("10"),
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(24 * time.Hour),
		IsActive:      true,
	}
	for _, opt := range opts {
		opt(coupon)
	}
	require.NoError(t, e.db.Create(coupon).Error)
	return coupon
}

func (e *testEnv) reloadProduct(t *testing.T, id uint) *models.Product {
	t.Helper()
	var product models.Product
	require.NoError(t, e.db.Unscoped().First(&product, id).Error)
	return &product
}

func (e *testEnv) reloadCoupon(t *testing.T, id uint) *models.Coupon {
	t.Helper()
	var coupon models.Coupon
	require.NoError(t, e.db.First(&coupon, id).Error)
	return &coupon
}

func intPtr(v int) *int {
	return &v
}

func moneyPtr(raw string) *models.Money {
	m := models.MustMoney(raw)
	return &m
}
