package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePercentageCouponClampsToMax(t *testing.T) {
	env := newTestEnv(t)
	env.createCoupon(t, "SAVE10", func(c *models.Coupon) {
		c.MaxDiscountAmount = moneyPtr("100")
	})

	quote, err := env.couponSvc.Validate(ValidateCouponInput{Code: "SAVE10", Amount: models.MustMoney("2000")})
	require.NoError(t, err)
	assert.Equal(t, "100.00", quote.Discount.String())
	assert.Equal(t, "1900.00", quote.FinalAmount.String())
}

func TestValidateFixedCouponAllowsNegativeFinal(t *testing.T) {
	env := newTestEnv(t)
	env.createCoupon(t, "FLAT50", func(c *models.Coupon) {
		c.DiscountType = constants.DiscountTypeFixed
		c.DiscountValue = models.MustMoney("50")
	})

	quote, err := env.couponSvc.Validate(ValidateCouponInput{Code: "FLAT50", Amount: models.MustMoney("30")})
	require.NoError(t, err)
	assert.Equal(t, "50.00", quote.Discount.String())
	assert.Equal(t, "-20.00", quote.FinalAmount.String())
}

func TestValidateWindowBoundsAreInclusive(t *testing.T) {
	env := newTestEnv(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	env.createCoupon(t, "JAN", func(c *models.Coupon) {
		c.StartDate = start
		c.EndDate = end
	})
	amount := models.MustMoney("100")

	_, err := env.couponSvc.Validate(ValidateCouponInput{Code: "JAN", Amount: amount, Now: start})
	assert.NoError(t, err)
	_, err = env.couponSvc.Validate(ValidateCouponInput{Code: "JAN", Amount: amount, Now: end})
	assert.NoError(t, err)
	_, err = env.couponSvc.Validate(ValidateCouponInput{Code: "JAN", Amount: amount, Now: start.Add(-time.Nanosecond)})
	assert.ErrorIs(t, err, ErrCouponNotYetValid)
	_, err = env.couponSvc.Validate(ValidateCouponInput{Code: "JAN", Amount: amount, Now: end.Add(time.Nanosecond)})
	assert.ErrorIs(t, err, ErrCouponExpired)
}

func TestValidateRejections(t *testing.T) {
	env := newTestEnv(t)
	env.createCoupon(t, "OFF", func(c *models.Coupon) { c.IsActive = false })
	env.createCoupon(t, "USEDUP", func(c *models.Coupon) {
		c.UsageLimit = intPtr(2)
		c.UsageCount = 2
	})
	env.createCoupon(t, "MIN500", func(c *models.Coupon) { c.MinPurchaseAmount = models.MustMoney("500") })
	env.createCoupon(t, "WEIRD", func(c *models.Coupon) { c.DiscountType = "bogus" })

	cases := []struct {
		code string
		want error
	}{
		{"MISSING", ErrCouponNotFound},
		{"off", ErrCouponNotFound},
		{"OFF", ErrCouponInactive},
		{"USEDUP", ErrCouponUsageLimit},
		{"MIN500", ErrCouponMinPurchase},
		{"WEIRD", ErrCouponInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			_, err := env.couponSvc.Validate(ValidateCouponInput{Code: tc.code, Amount: models.MustMoney("100")})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateDoesNotConsumeUsage(t *testing.T) {
	env := newTestEnv(t)
	coupon := env.createCoupon(t, "ONCE", func(c *models.Coupon) { c.UsageLimit = intPtr(1) })

	for i := 0; i < 3; i++ {
		_, err := env.couponSvc.Validate(ValidateCouponInput{Code: "ONCE", Amount: models.MustMoney("100")})
		require.NoError(t, err)
	}
	assert.Equal(t, 0, env.reloadCoupon(t, coupon.ID).UsageCount)
}

func TestValidateScopedCouponUsesEligibleLines(t *testing.T) {
	env := newTestEnv(t)
	env.createCoupon(t, "PHONES", func(c *models.Coupon) {
		c.ApplicableCategories = models.IDList{7}
	})
	lines := []CouponLine{
		{ProductID: 1, CategoryID: 7, Subtotal: models.MustMoney("300")},
		{ProductID: 2, CategoryID: 8, Subtotal: models.MustMoney("700")},
	}

	quote, err := env.couponSvc.Validate(ValidateCouponInput{Code: "PHONES", Amount: models.MustMoney("1000"), Lines: lines})
	require.NoError(t, err)
	assert.Equal(t, "30.00", quote.Discount.String())
	assert.Equal(t, "970.00", quote.FinalAmount.String())

	_, err = env.couponSvc.Validate(ValidateCouponInput{Code: "PHONES", Amount: models.MustMoney("700"), Lines: lines[1:]})
	assert.ErrorIs(t, err, ErrCouponNotApplicable)

	quote, err = env.couponSvc.Validate(ValidateCouponInput{Code: "PHONES", Amount: models.MustMoney("1000")})
	require.NoError(t, err)
	assert.Equal(t, "100.00", quote.Discount.String())
}

func TestValidateFirstOrderOnly(t *testing.T) {
	env := newTestEnv(t)
	env.createCoupon(t, "WELCOME", func(c *models.Coupon) { c.IsFirstTimeUser = true })
	user := env.createUser(t, "newbie")

	_, err := env.couponSvc.Validate(ValidateCouponInput{Code: "WELCOME", Amount: models.MustMoney("100"), UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, env.db.Create(&models.Order{
		OrderNo:         "SF-FIRST",
		UserID:          user.ID,
		Status:          constants.OrderStatusDelivered,
		ShippingAddress: "addr",
		PaymentMethod:   "cod",
	}).Error)
	_, err = env.couponSvc.Validate(ValidateCouponInput{Code: "WELCOME", Amount: models.MustMoney("100"), UserID: user.ID})
	assert.ErrorIs(t, err, ErrCouponFirstOrderOnly)
}

func TestListActiveCouponsWithoutCache(t *testing.T) {
	env := newTestEnv(t)
	env.createCoupon(t, "LIVE")
	env.createCoupon(t, "PAUSED", func(c *models.Coupon) { c.IsActive = false })
	env.createCoupon(t, "OLD", func(c *models.Coupon) {
		c.StartDate = time.Now().Add(-48 * time.Hour)
		c.EndDate = time.Now().Add(-24 * time.Hour)
	})

	coupons, err := env.couponSvc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "LIVE", coupons[0].Code)
}

func TestCouponAdminValidation(t *testing.T) {
	env := newTestEnv(t)
	admin := NewCouponAdminService(env.coupons)
	ctx := context.Background()
	now := time.Now()
	input := CouponInput{
		Code:          "NEW10",
		Name:          "New ten",
		DiscountType:  constants.DiscountTypePercentage,
		DiscountValue: models.MustMoney("10"),
		StartDate:     now,
		EndDate:       now.Add(time.Hour),
	}

	created, err := admin.Create(ctx, input)
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	_, err = admin.Create(ctx, input)
	assert.ErrorIs(t, err, ErrCouponCodeExists)

	bad := input
	bad.Code = "BACKWARDS"
	bad.EndDate = now.Add(-time.Hour)
	_, err = admin.Create(ctx, bad)
	assert.ErrorIs(t, err, ErrCouponDateRange)

	inactive := false
	input.IsActive = &inactive
	input.Name = "Renamed"
	updated, err := admin.Update(ctx, created.ID, input)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.False(t, env.reloadCoupon(t, created.ID).IsActive)
}
