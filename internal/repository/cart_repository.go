package repository

import (
	"errors"

	"github.com/shopfront/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	GetByIDAndUser(id, userID uint) (*models.CartItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int) error
	DeleteByIDAndUser(id, userID uint) (int64, error)
	DeleteByUserAndProducts(userID uint, productIDs []uint) error
	ClearByUser(userID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser 获取用户购物车项
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("updated_at desc").Order("id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByIDAndUser 获取用户的购物车项
func (r *GormCartRepository) GetByIDAndUser(id, userID uint) (*models.CartItem, error) {
	return r.first(r.db.Where("id = ? AND user_id = ?", id, userID))
}

// GetByUserAndProduct 按商品获取购物车项
func (r *GormCartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	return r.first(r.db.Where("user_id = ? AND product_id = ?", userID, productID))
}

func (r *GormCartRepository) first(query *gorm.DB) (*models.CartItem, error) {
	var item models.CartItem
	if err := query.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 新增购物车项
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Omit("Product").Create(item).Error
}

// UpdateQuantity 设置购物车项数量
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

// DeleteByIDAndUser 删除购物车项，返回删除行数
func (r *GormCartRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteByUserAndProducts 删除用户购物车中的指定商品
func (r *GormCartRepository) DeleteByUserAndProducts(userID uint, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	return r.db.Where("user_id = ? AND product_id IN ?", userID, productIDs).Delete(&models.CartItem{}).Error
}

// ClearByUser 清空购物车
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
