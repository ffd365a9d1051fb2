package cache

import (
	"context"
	"time"

	"github.com/shopfront/internal/models"
)

const (
	categoriesKey    = "catalog:categories"
	activeCouponsKey = "catalog:coupons:active"
	activeBannersKey = "catalog:banners:active"
)

var catalogCacheTTL = 5 * time.Minute

// SetCatalogTTL 设置目录缓存有效期
func SetCatalogTTL(ttl time.Duration) {
	if ttl > 0 {
		catalogCacheTTL = ttl
	}
}

// GetCategories 读取分类列表缓存
func GetCategories(ctx context.Context) ([]models.Category, bool, error) {
	var categories []models.Category
	hit, err := GetJSON(ctx, categoriesKey, &categories)
	return categories, hit, err
}

// SetCategories 写入分类列表缓存
func SetCategories(ctx context.Context, categories []models.Category) error {
	return SetJSON(ctx, categoriesKey, categories, catalogCacheTTL)
}

// InvalidateCategories 失效分类列表缓存
func InvalidateCategories(ctx context.Context) error {
	return Del(ctx, categoriesKey)
}

// GetActiveCoupons 读取可用优惠券缓存
func GetActiveCoupons(ctx context.Context) ([]models.Coupon, bool, error) {
	var coupons []models.Coupon
	hit, err := GetJSON(ctx, activeCouponsKey, &coupons)
	return coupons, hit, err
}

// SetActiveCoupons 写入可用优惠券缓存，有效期不超过 ttl
func SetActiveCoupons(ctx context.Context, coupons []models.Coupon, ttl time.Duration) error {
	if ttl <= 0 || ttl > catalogCacheTTL {
		ttl = catalogCacheTTL
	}
	return SetJSON(ctx, activeCouponsKey, coupons, ttl)
}

// InvalidateActiveCoupons 失效可用优惠券缓存
func InvalidateActiveCoupons(ctx context.Context) error {
	return Del(ctx, activeCouponsKey)
}

// GetActiveBanners 读取启用 Banner 缓存
func GetActiveBanners(ctx context.Context) ([]models.Banner, bool, error) {
	var banners []models.Banner
	hit, err := GetJSON(ctx, activeBannersKey, &banners)
	return banners, hit, err
}

// SetActiveBanners 写入启用 Banner 缓存
func SetActiveBanners(ctx context.Context, banners []models.Banner) error {
	return SetJSON(ctx, activeBannersKey, banners, catalogCacheTTL)
}

// InvalidateActiveBanners 失效启用 Banner 缓存
func InvalidateActiveBanners(ctx context.Context) error {
	return Del(ctx, activeBannersKey)
}
