package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponAdminService 优惠券管理服务
type CouponAdminService struct {
	couponRepo repository.CouponRepository
}

// NewCouponAdminService 创建优惠券管理服务
func NewCouponAdminService(couponRepo repository.CouponRepository) *CouponAdminService {
	return &CouponAdminService{couponRepo: couponRepo}
}

// CouponInput 创建/更新优惠券输入
type CouponInput struct {
	Code                 string
	Name                 string
	Description          string
	DiscountType         string
	DiscountValue        models.Money
	MinPurchaseAmount    models.Money
	MaxDiscountAmount    *models.Money
	StartDate            time.Time
	EndDate              time.Time
	UsageLimit           *int
	IsActive             *bool
	IsFirstTimeUser      bool
	ApplicableCategories []uint
	ApplicableProducts   []uint
}

// List 优惠券列表
func (s *CouponAdminService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}

// Create 创建优惠券
func (s *CouponAdminService) Create(ctx context.Context, input CouponInput) (*models.Coupon, error) {
	coupon := &models.Coupon{IsActive: true}
	if err := s.apply(coupon, input, 0); err != nil {
		return nil, err
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return coupon, nil
}

// Update 更新优惠券，已使用次数保持不变
func (s *CouponAdminService) Update(ctx context.Context, id uint, input CouponInput) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if err := s.apply(coupon, input, id); err != nil {
		return nil, err
	}
	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return coupon, nil
}

// Delete 删除优惠券
func (s *CouponAdminService) Delete(ctx context.Context, id uint) error {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}
	if err := s.couponRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CouponAdminService) apply(coupon *models.Coupon, input CouponInput, excludeID uint) error {
	code := strings.TrimSpace(input.Code)
	discountType := strings.ToLower(strings.TrimSpace(input.DiscountType))
	if code == "" || strings.TrimSpace(input.Name) == "" {
		return ErrCouponInvalid
	}
	if discountType != constants.DiscountTypePercentage && discountType != constants.DiscountTypeFixed {
		return ErrCouponInvalid
	}
	if input.DiscountValue.Decimal.LessThanOrEqual(decimal.Zero) {
		return ErrCouponInvalid
	}
	if discountType == constants.DiscountTypePercentage && input.DiscountValue.Decimal.GreaterThan(decimal.NewFromInt(100)) {
		return ErrCouponInvalid
	}
	if input.MinPurchaseAmount.Decimal.IsNegative() {
		return ErrCouponInvalid
	}
	if input.MaxDiscountAmount != nil && input.MaxDiscountAmount.Decimal.LessThanOrEqual(decimal.Zero) {
		return ErrCouponInvalid
	}
	if input.UsageLimit != nil && *input.UsageLimit < 0 {
		return ErrCouponInvalid
	}
	if !input.StartDate.Before(input.EndDate) {
		return ErrCouponDateRange
	}

	count, err := s.couponRepo.CountByCode(code, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCouponCodeExists
	}

	coupon.Code = code
	coupon.Name = strings.TrimSpace(input.Name)
	coupon.Description = strings.TrimSpace(input.Description)
	coupon.DiscountType = discountType
	coupon.DiscountValue = input.DiscountValue
	coupon.MinPurchaseAmount = input.MinPurchaseAmount
	coupon.MaxDiscountAmount = nil
	if discountType == constants.DiscountTypePercentage {
		coupon.MaxDiscountAmount = input.MaxDiscountAmount
	}
	coupon.StartDate = input.StartDate
	coupon.EndDate = input.EndDate
	coupon.UsageLimit = input.UsageLimit
	coupon.IsFirstTimeUser = input.IsFirstTimeUser
	coupon.ApplicableCategories = models.IDList(input.ApplicableCategories)
	coupon.ApplicableProducts = models.IDList(input.ApplicableProducts)
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}
	return nil
}

func (s *CouponAdminService) invalidate(ctx context.Context) {
	if err := cache.InvalidateActiveCoupons(ctx); err != nil {
		logger.Warnw("coupon_cache_invalidate_failed", "error", err)
	}
}
