package provider

import (
	"time"

	"github.com/shopfront/internal/authz"
	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/events"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/queue"
	"github.com/shopfront/internal/repository"
	"github.com/shopfront/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config         *config.Config
	QueueClient    *queue.Client
	EventPublisher events.Publisher

	// Repositories
	UserRepo        repository.UserRepository
	CategoryRepo    repository.CategoryRepository
	ProductRepo     repository.ProductRepository
	BannerRepo      repository.BannerRepository
	CartRepo        repository.CartRepository
	WishlistRepo    repository.WishlistRepository
	CouponRepo      repository.CouponRepository
	CouponUsageRepo repository.CouponUsageRepository
	OrderRepo       repository.OrderRepository

	// Services
	AuthzService       *authz.Service
	AuthService        *service.AuthService
	UserAdminService   *service.UserAdminService
	CategoryService    *service.CategoryService
	ProductService     *service.ProductService
	BannerService      *service.BannerService
	CartService        *service.CartService
	WishlistService    *service.WishlistService
	CouponService      *service.CouponService
	CouponAdminService *service.CouponAdminService
	OrderService       *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	cache.SetCatalogTTL(time.Duration(cfg.Cache.CatalogTTLSeconds) * time.Second)
	cache.SetAuthStateTTL(time.Duration(cfg.Cache.AuthTTLSeconds) * time.Second)

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:         cfg,
		QueueClient:    queueClient,
		EventPublisher: events.NewPublisher(&cfg.Events),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

// Close 释放队列与事件投递连接
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			logger.Warnw("provider_close_event_publisher_failed", "error", err)
		}
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.CouponUsageRepo = repository.NewCouponUsageRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserAdminService = service.NewUserAdminService(c.UserRepo, c.AuthService)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.BannerService = service.NewBannerService(c.BannerRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo, c.OrderRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo)
	c.OrderService = service.NewOrderService(service.OrderServiceOptions{
		OrderRepo:       c.OrderRepo,
		ProductRepo:     c.ProductRepo,
		CouponRepo:      c.CouponRepo,
		CouponUsageRepo: c.CouponUsageRepo,
		CartRepo:        c.CartRepo,
		CouponService:   c.CouponService,
		QueueClient:     c.QueueClient,
	})
}
