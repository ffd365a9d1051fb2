package repository

import (
	"errors"
	"strings"

	"github.com/shopfront/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	CountByEmail(email string, excludeID uint) (int64, error)
	CountByUsername(username string, excludeID uint) (int64, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) error
	List(filter UserListFilter) ([]models.User, int64, error)
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByID 根据ID获取用户
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	return r.first(r.db.Where("id = ?", id))
}

// GetByEmail 根据邮箱获取用户
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.first(r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))))
}

// GetByUsername 根据用户名获取用户
func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.first(r.db.Where("username = ?", strings.TrimSpace(username)))
}

func (r *GormUserRepository) first(query *gorm.DB) (*models.User, error) {
	var user models.User
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CountByEmail 统计邮箱占用数量
func (r *GormUserRepository) CountByEmail(email string, excludeID uint) (int64, error) {
	query := r.db.Model(&models.User{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// CountByUsername 统计用户名占用数量
func (r *GormUserRepository) CountByUsername(username string, excludeID uint) (int64, error) {
	query := r.db.Model(&models.User{}).Where("username = ?", strings.TrimSpace(username))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete 删除用户
func (r *GormUserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// List 用户列表
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if filter.Keyword != "" {
		like := likePattern(filter.Keyword)
		query = query.Where("email LIKE ? OR username LIKE ?", like, like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var users []models.User
	if err := query.Order("id DESC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
