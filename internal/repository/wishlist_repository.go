package repository

import (
	"errors"

	"github.com/shopfront/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository 心愿单数据访问接口
type WishlistRepository interface {
	ListByUser(userID uint) ([]models.WishlistItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	DeleteByIDAndUser(id, userID uint) (int64, error)
}

// GormWishlistRepository GORM 实现
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓库
func NewWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// ListByUser 获取用户心愿单
func (r *GormWishlistRepository) ListByUser(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByUserAndProduct 按商品获取心愿单项
func (r *GormWishlistRepository) GetByUserAndProduct(userID, productID uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 新增心愿单项
func (r *GormWishlistRepository) Create(item *models.WishlistItem) error {
	return r.db.Omit("Product").Create(item).Error
}

// DeleteByIDAndUser 删除心愿单项
func (r *GormWishlistRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.WishlistItem{})
	return result.RowsAffected, result.Error
}
