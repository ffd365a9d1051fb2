package service

import (
	"context"
	"strings"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

// List 获取分类列表，优先读缓存
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	if cached, hit, err := cache.GetCategories(ctx); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("category_cache_get_failed", "error", err)
	}

	categories, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetCategories(ctx, categories); err != nil {
		logger.Warnw("category_cache_set_failed", "error", err)
	}
	return categories, nil
}

// Create 创建分类
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if err := s.ensureNameFree(name, 0); err != nil {
		return nil, err
	}

	category := models.Category{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &category, nil
}

// Update 更新分类
func (s *CategoryService) Update(ctx context.Context, id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	name := strings.TrimSpace(input.Name)
	if err := s.ensureNameFree(name, id); err != nil {
		return nil, err
	}

	category.Name = name
	category.Description = strings.TrimSpace(input.Description)
	category.ImageURL = strings.TrimSpace(input.ImageURL)
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return category, nil
}

// Delete 删除分类，分类下仍有商品时拒绝
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CategoryService) ensureNameFree(name string, excludeID uint) error {
	count, err := s.repo.CountByName(name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryExists
	}
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if err := cache.InvalidateCategories(ctx); err != nil {
		logger.Warnw("category_cache_invalidate_failed", "error", err)
	}
}
