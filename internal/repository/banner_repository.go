package repository

import (
	"errors"

	"github.com/shopfront/internal/models"

	"gorm.io/gorm"
)

// BannerRepository Banner 数据访问接口
type BannerRepository interface {
	List(filter BannerListFilter) ([]models.Banner, int64, error)
	ListActive(limit int) ([]models.Banner, error)
	GetByID(id uint) (*models.Banner, error)
	Create(banner *models.Banner) error
	Update(banner *models.Banner) error
	Delete(id uint) error
}

// GormBannerRepository GORM 实现
type GormBannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository 创建 Banner 仓库
func NewBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// List Banner 列表
func (r *GormBannerRepository) List(filter BannerListFilter) ([]models.Banner, int64, error) {
	query := r.db.Model(&models.Banner{})
	if filter.Search != "" {
		query = query.Where("title LIKE ?", likePattern(filter.Search))
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var banners []models.Banner
	if err := query.Order("sort_order ASC").Order("id DESC").Find(&banners).Error; err != nil {
		return nil, 0, err
	}
	return banners, total, nil
}

// ListActive 获取启用的 Banner
func (r *GormBannerRepository) ListActive(limit int) ([]models.Banner, error) {
	query := r.db.Where("is_active = ?", true).Order("sort_order ASC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var banners []models.Banner
	if err := query.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// GetByID 获取 Banner
func (r *GormBannerRepository) GetByID(id uint) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

// Create 创建 Banner
func (r *GormBannerRepository) Create(banner *models.Banner) error {
	return r.db.Create(banner).Error
}

// Update 更新 Banner
func (r *GormBannerRepository) Update(banner *models.Banner) error {
	return r.db.Save(banner).Error
}

// Delete 删除 Banner
func (r *GormBannerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Banner{}, id).Error
}
