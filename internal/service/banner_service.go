package service

import (
	"context"
	"strings"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

const publicBannerLimit = 20

// BannerService Banner 服务
type BannerService struct {
	repo repository.BannerRepository
}

// NewBannerService 创建 Banner 服务
func NewBannerService(repo repository.BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// BannerInput 创建/更新 Banner 输入
type BannerInput struct {
	Title       string
	Description string
	ImageURL    string
	Link        string
	IsActive    *bool
	SortOrder   int
}

// List 管理端列表
func (s *BannerService) List(filter repository.BannerListFilter) ([]models.Banner, int64, error) {
	return s.repo.List(filter)
}

// ListPublic 前台启用的 Banner
func (s *BannerService) ListPublic(ctx context.Context) ([]models.Banner, error) {
	if cached, hit, err := cache.GetActiveBanners(ctx); err == nil && hit {
		return cached, nil
	}
	banners, err := s.repo.ListActive(publicBannerLimit)
	if err != nil {
		return nil, err
	}
	if err := cache.SetActiveBanners(ctx, banners); err != nil {
		logger.Warnw("banner_cache_set_failed", "error", err)
	}
	return banners, nil
}

// Create 创建 Banner
func (s *BannerService) Create(ctx context.Context, input BannerInput) (*models.Banner, error) {
	banner := &models.Banner{IsActive: true}
	applyBannerInput(banner, input)
	if err := s.repo.Create(banner); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return banner, nil
}

// Update 更新 Banner
func (s *BannerService) Update(ctx context.Context, id uint, input BannerInput) (*models.Banner, error) {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrBannerNotFound
	}
	applyBannerInput(banner, input)
	if err := s.repo.Update(banner); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return banner, nil
}

// Delete 删除 Banner
func (s *BannerService) Delete(ctx context.Context, id uint) error {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if banner == nil {
		return ErrBannerNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *BannerService) invalidate(ctx context.Context) {
	if err := cache.InvalidateActiveBanners(ctx); err != nil {
		logger.Warnw("banner_cache_invalidate_failed", "error", err)
	}
}

func applyBannerInput(banner *models.Banner, input BannerInput) {
	banner.Title = strings.TrimSpace(input.Title)
	banner.Description = strings.TrimSpace(input.Description)
	banner.ImageURL = strings.TrimSpace(input.ImageURL)
	banner.Link = strings.TrimSpace(input.Link)
	banner.SortOrder = input.SortOrder
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
}
