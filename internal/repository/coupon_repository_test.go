package repository

import (
	"testing"
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"
)

func createTestCoupon(t *testing.T, repo *GormCouponRepository, code string, limit *int, active bool, start, end time.Time) *models.Coupon {
	t.Helper()
	coupon := &models.Coupon{
		Code:          code,
		Name:          code,
		DiscountType:  constants.DiscountTypeFixed,
		DiscountValue: models.MustMoney("10"),
		StartDate:     start,
		EndDate:       end,
		UsageLimit:    limit,
		IsActive:      active,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return coupon
}

func TestCouponIncrementUsageCountRespectsLimit(t *testing.T) {
	db := openTestDB(t)
	repo := NewCouponRepository(db)
	now := time.Now()
	limit := 2
	coupon := createTestCoupon(t, repo, "TWICE", &limit, true, now.Add(-time.Hour), now.Add(time.Hour))

	for i := 0; i < 2; i++ {
		ok, err := repo.IncrementUsageCount(coupon.ID)
		if err != nil || !ok {
			t.Fatalf("increment %d failed: ok=%v err=%v", i, ok, err)
		}
	}
	ok, err := repo.IncrementUsageCount(coupon.ID)
	if err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if ok {
		t.Fatalf("expected third increment to be rejected")
	}

	if err := repo.DecrementUsageCount(coupon.ID); err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	stored, _ := repo.GetByID(coupon.ID)
	if stored.UsageCount != 1 {
		t.Fatalf("expected usage count 1, got %d", stored.UsageCount)
	}
}

func TestCouponInactiveFlagPersists(t *testing.T) {
	db := openTestDB(t)
	repo := NewCouponRepository(db)
	now := time.Now()
	coupon := createTestCoupon(t, repo, "OFF", nil, false, now.Add(-time.Hour), now.Add(time.Hour))

	stored, err := repo.GetByCode("OFF")
	if err != nil || stored == nil {
		t.Fatalf("get by code failed: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("expected coupon %d to stay inactive", coupon.ID)
	}
	if missing, _ := repo.GetByCode("off"); missing != nil {
		t.Fatalf("expected exact code match")
	}
}

func TestCouponListActive(t *testing.T) {
	db := openTestDB(t)
	repo := NewCouponRepository(db)
	now := time.Now()
	exhausted := 0
	createTestCoupon(t, repo, "LIVE", nil, true, now.Add(-time.Hour), now.Add(time.Hour))
	createTestCoupon(t, repo, "FUTURE", nil, true, now.Add(time.Hour), now.Add(2*time.Hour))
	createTestCoupon(t, repo, "OLD", nil, true, now.Add(-2*time.Hour), now.Add(-time.Hour))
	createTestCoupon(t, repo, "PAUSED", nil, false, now.Add(-time.Hour), now.Add(time.Hour))
	createTestCoupon(t, repo, "USEDUP", &exhausted, true, now.Add(-time.Hour), now.Add(time.Hour))

	coupons, err := repo.ListActive(now)
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(coupons) != 1 || coupons[0].Code != "LIVE" {
		t.Fatalf("expected only LIVE coupon, got %+v", coupons)
	}
}
