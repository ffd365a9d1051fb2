package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/config"
	adminhandlers "github.com/shopfront/internal/http/handlers/admin"
	publichandlers "github.com/shopfront/internal/http/handlers/public"
	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	shared.RegisterValidatorTagNames()
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sf"
	}
	authRateLimit := RateLimitMiddleware(cache.Client(), RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:auth", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}, KeyByIPAndJSONField("email"))

	// 中间件
	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	requireUser := JWTAuthMiddleware(c.AuthService)
	adminRBAC := AdminRBACMiddleware(c.AuthzService)
	adminOnly := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{requireUser, adminRBAC, handler}
	}
	optionalUser := OptionalAuthMiddleware(c.AuthService)

	api := r.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", authRateLimit, publicHandler.Register)
			auth.POST("/login", authRateLimit, publicHandler.Login)
			auth.GET("/me", requireUser, publicHandler.Me)
		}

		categories := api.Group("/categories/admin")
		{
			categories.GET("", publicHandler.ListCategories)
			categories.POST("", adminOnly(adminHandler.CreateCategory)...)
			categories.PUT("/:id", adminOnly(adminHandler.UpdateCategory)...)
			categories.DELETE("/:id", adminOnly(adminHandler.DeleteCategory)...)
		}

		products := api.Group("/products/admin")
		{
			products.GET("", publicHandler.ListProducts)
			products.GET("/:id", publicHandler.GetProduct)
			products.POST("", adminOnly(adminHandler.CreateProduct)...)
			products.PUT("/:id", adminOnly(adminHandler.UpdateProduct)...)
			products.DELETE("/:id", adminOnly(adminHandler.DeleteProduct)...)
		}

		banners := api.Group("/banners")
		{
			banners.GET("", publicHandler.ListBanners)
			banners.GET("/admin", adminOnly(adminHandler.ListBanners)...)
			banners.POST("/admin", adminOnly(adminHandler.CreateBanner)...)
			banners.PUT("/admin/:id", adminOnly(adminHandler.UpdateBanner)...)
			banners.DELETE("/admin/:id", adminOnly(adminHandler.DeleteBanner)...)
		}

		cart := api.Group("/cart", requireUser)
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("", publicHandler.AddCartItem)
			cart.DELETE("", publicHandler.ClearCart)
			cart.PUT("/:id", publicHandler.UpdateCartItem)
			cart.DELETE("/:id", publicHandler.RemoveCartItem)
		}

		wishlist := api.Group("/wishlist", requireUser)
		{
			wishlist.GET("", publicHandler.GetWishlist)
			wishlist.POST("", publicHandler.AddWishlistItem)
			wishlist.DELETE("/:id", publicHandler.RemoveWishlistItem)
		}

		coupons := api.Group("/coupons")
		{
			coupons.POST("/validate", optionalUser, publicHandler.ValidateCoupon)
			coupons.GET("/active", publicHandler.ListActiveCoupons)
			coupons.GET("/admin", adminOnly(adminHandler.ListCoupons)...)
			coupons.POST("/admin", adminOnly(adminHandler.CreateCoupon)...)
			coupons.PUT("/admin/:id", adminOnly(adminHandler.UpdateCoupon)...)
			coupons.DELETE("/admin/:id", adminOnly(adminHandler.DeleteCoupon)...)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", requireUser, publicHandler.CreateOrder)
			orders.GET("", adminOnly(adminHandler.ListOrders)...)
			orders.GET("/user/:userId", requireUser, publicHandler.ListUserOrders)
			orders.GET("/:id", requireUser, publicHandler.GetOrder)
			orders.PUT("/:id/status", adminOnly(adminHandler.UpdateOrderStatus)...)
		}

		users := api.Group("/admin/users", requireUser, adminRBAC)
		{
			users.GET("", adminHandler.ListUsers)
			users.POST("", adminHandler.CreateUser)
			users.PUT("/:id", adminHandler.UpdateUser)
			users.DELETE("/:id", adminHandler.DeleteUser)
		}
	}

	return r
}
