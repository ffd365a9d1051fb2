package repository

import (
	"errors"
	"time"

	"github.com/shopfront/internal/models"

	"gorm.io/gorm"
)

// CouponRepository 优惠券数据访问接口
type CouponRepository interface {
	GetByID(id uint) (*models.Coupon, error)
	GetByCode(code string) (*models.Coupon, error)
	CountByCode(code string, excludeID uint) (int64, error)
	Create(coupon *models.Coupon) error
	Update(coupon *models.Coupon) error
	Delete(id uint) error
	List(filter CouponListFilter) ([]models.Coupon, int64, error)
	ListActive(now time.Time) ([]models.Coupon, error)
	IncrementUsageCount(id uint) (bool, error)
	DecrementUsageCount(id uint) error
	WithTx(tx *gorm.DB) CouponRepository
}

// GormCouponRepository GORM 实现
type GormCouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository 创建优惠券仓库
func NewCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCouponRepository) WithTx(tx *gorm.DB) CouponRepository {
	if tx == nil {
		return r
	}
	return &GormCouponRepository{db: tx}
}

// GetByID 根据ID获取优惠券
func (r *GormCouponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// GetByCode 根据优惠码精确匹配获取优惠券
func (r *GormCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.Where("code = ?", code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// CountByCode 统计优惠码占用数量
func (r *GormCouponRepository) CountByCode(code string, excludeID uint) (int64, error) {
	query := r.db.Model(&models.Coupon{}).Where("code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// Create 创建优惠券
func (r *GormCouponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

// Update 更新优惠券
func (r *GormCouponRepository) Update(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

// Delete 删除优惠券
func (r *GormCouponRepository) Delete(id uint) error {
	return r.db.Delete(&models.Coupon{}, id).Error
}

// List 获取优惠券列表
func (r *GormCouponRepository) List(filter CouponListFilter) ([]models.Coupon, int64, error) {
	query := r.db.Model(&models.Coupon{})

	if filter.Code != "" {
		query = query.Where("code = ?", filter.Code)
	}
	if filter.Search != "" {
		like := likePattern(filter.Search)
		query = query.Where("code LIKE ? OR name LIKE ?", like, like)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var coupons []models.Coupon
	if err := query.Order("id DESC").Find(&coupons).Error; err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

// ListActive 获取当前时间处于有效期内的启用优惠券
func (r *GormCouponRepository) ListActive(now time.Time) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Where("usage_limit IS NULL OR usage_count < usage_limit").
		Order("end_date ASC").
		Find(&coupons).Error
	if err != nil {
		return nil, err
	}
	return coupons, nil
}

// IncrementUsageCount 使用次数 +1，达到上限时返回 false
func (r *GormCouponRepository) IncrementUsageCount(id uint) (bool, error) {
	result := r.db.Model(&models.Coupon{}).
		Where("id = ?", id).
		Where("usage_limit IS NULL OR usage_count < usage_limit").
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DecrementUsageCount 使用次数 -1，不低于 0
func (r *GormCouponRepository) DecrementUsageCount(id uint) error {
	return r.db.Model(&models.Coupon{}).
		Where("id = ? AND usage_count > 0", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count - ?", 1)).Error
}
