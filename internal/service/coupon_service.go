package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponService 优惠券校验与折扣计算
type CouponService struct {
	couponRepo repository.CouponRepository
	orderRepo  repository.OrderRepository
	now        func() time.Time
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository, orderRepo repository.OrderRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		orderRepo:  orderRepo,
		now:        time.Now,
	}
}

// CouponLine 参与适用范围判断的购物车行
type CouponLine struct {
	ProductID  uint
	CategoryID uint
	Subtotal   models.Money
}

// ValidateCouponInput 优惠券校验输入
type ValidateCouponInput struct {
	Code   string
	Amount models.Money
	// UserID 为 0 时跳过首单限制
	UserID uint
	// Lines 为空时跳过适用范围过滤
	Lines []CouponLine
	// Now 为零值时使用当前时间
	Now time.Time
}

// CouponQuote 优惠券校验结果
type CouponQuote struct {
	Coupon      *models.Coupon `json:"coupon"`
	Discount    models.Money   `json:"discount"`
	FinalAmount models.Money   `json:"finalAmount"`
}

// Validate 校验优惠码并计算折扣，不会增加使用次数
func (s *CouponService) Validate(input ValidateCouponInput) (*CouponQuote, error) {
	return s.quote(s.couponRepo, s.orderRepo, input)
}

// ListActive 当前可用的优惠券
func (s *CouponService) ListActive(ctx context.Context) ([]models.Coupon, error) {
	if cached, hit, err := cache.GetActiveCoupons(ctx); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("coupon_cache_get_failed", "error", err)
	}

	now := s.now()
	coupons, err := s.couponRepo.ListActive(now)
	if err != nil {
		return nil, err
	}
	// 缓存不跨越最早到期的优惠券
	var ttl time.Duration
	if len(coupons) > 0 {
		ttl = coupons[0].EndDate.Sub(now)
	}
	if ttl > 0 || len(coupons) == 0 {
		if err := cache.SetActiveCoupons(ctx, coupons, ttl); err != nil {
			logger.Warnw("coupon_cache_set_failed", "error", err)
		}
	}
	return coupons, nil
}

// quote 使用给定仓库执行校验，下单事务内传入事务仓库
func (s *CouponService) quote(couponRepo repository.CouponRepository, orderRepo repository.OrderRepository, input ValidateCouponInput) (*CouponQuote, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, ErrCouponNotFound
	}
	coupon, err := couponRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	now := input.Now
	if now.IsZero() {
		now = s.now()
	}
	if err := checkCouponUsable(coupon, input.Amount, now); err != nil {
		return nil, err
	}

	if coupon.IsFirstTimeUser && input.UserID != 0 && orderRepo != nil {
		count, err := orderRepo.CountPlacedByUser(input.UserID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCouponFirstOrderOnly
		}
	}

	base := input.Amount
	if coupon.HasScope() && len(input.Lines) > 0 {
		eligible, ok := eligibleSubtotal(coupon, input.Lines)
		if !ok {
			return nil, ErrCouponNotApplicable
		}
		base = eligible
	}

	discount, err := calculateDiscount(coupon, base)
	if err != nil {
		return nil, err
	}
	return &CouponQuote{
		Coupon:      coupon,
		Discount:    discount,
		FinalAmount: input.Amount.Sub(discount),
	}, nil
}

// checkCouponUsable 依次校验启用状态、有效期（含边界）、使用上限与门槛
func checkCouponUsable(coupon *models.Coupon, amount models.Money, now time.Time) error {
	if !coupon.IsActive {
		return ErrCouponInactive
	}
	if now.Before(coupon.StartDate) {
		return ErrCouponNotYetValid
	}
	if now.After(coupon.EndDate) {
		return ErrCouponExpired
	}
	if coupon.UsageLimit != nil && coupon.UsageCount >= *coupon.UsageLimit {
		return ErrCouponUsageLimit
	}
	if coupon.MinPurchaseAmount.Decimal.GreaterThan(decimal.Zero) && amount.Decimal.LessThan(coupon.MinPurchaseAmount.Decimal) {
		return fmt.Errorf("%w: %s required", ErrCouponMinPurchase, coupon.MinPurchaseAmount.String())
	}
	return nil
}

func eligibleSubtotal(coupon *models.Coupon, lines []CouponLine) (models.Money, bool) {
	eligible := decimal.Zero
	matched := false
	for _, line := range lines {
		if coupon.ApplicableProducts.Contains(line.ProductID) || coupon.ApplicableCategories.Contains(line.CategoryID) {
			eligible = eligible.Add(line.Subtotal.Decimal)
			matched = true
		}
	}
	return models.NewMoneyFromDecimal(eligible), matched
}

// calculateDiscount 百分比折扣受最大优惠金额限制，固定金额不做限制
func calculateDiscount(coupon *models.Coupon, base models.Money) (models.Money, error) {
	switch strings.ToLower(strings.TrimSpace(coupon.DiscountType)) {
	case constants.DiscountTypePercentage:
		discount := base.Decimal.Mul(coupon.DiscountValue.Decimal).Div(decimal.NewFromInt(100))
		if coupon.MaxDiscountAmount != nil && discount.GreaterThan(coupon.MaxDiscountAmount.Decimal) {
			discount = coupon.MaxDiscountAmount.Decimal
		}
		return models.NewMoneyFromDecimal(discount), nil
	case constants.DiscountTypeFixed:
		return models.NewMoneyFromDecimal(coupon.DiscountValue.Decimal), nil
	default:
		return models.Money{}, ErrCouponInvalid
	}
}
