package repository

import (
	"errors"

	"github.com/shopfront/internal/models"

	"gorm.io/gorm"
)

// CouponUsageRepository 优惠券使用记录数据访问接口
type CouponUsageRepository interface {
	Create(usage *models.CouponUsage) error
	GetByOrderID(orderID uint) (*models.CouponUsage, error)
	DeleteByOrderID(orderID uint) error
	WithTx(tx *gorm.DB) CouponUsageRepository
}

// GormCouponUsageRepository GORM 实现
type GormCouponUsageRepository struct {
	db *gorm.DB
}

// NewCouponUsageRepository 创建优惠券使用记录仓库
func NewCouponUsageRepository(db *gorm.DB) *GormCouponUsageRepository {
	return &GormCouponUsageRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCouponUsageRepository) WithTx(tx *gorm.DB) CouponUsageRepository {
	if tx == nil {
		return r
	}
	return &GormCouponUsageRepository{db: tx}
}

// Create 创建使用记录
func (r *GormCouponUsageRepository) Create(usage *models.CouponUsage) error {
	return r.db.Create(usage).Error
}

// GetByOrderID 根据订单获取使用记录
func (r *GormCouponUsageRepository) GetByOrderID(orderID uint) (*models.CouponUsage, error) {
	var usage models.CouponUsage
	if err := r.db.Where("order_id = ?", orderID).First(&usage).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usage, nil
}

// DeleteByOrderID 删除订单的使用记录
func (r *GormCouponUsageRepository) DeleteByOrderID(orderID uint) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.CouponUsage{}).Error
}
