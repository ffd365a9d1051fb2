package service

import (
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

// WishlistService 收藏夹服务
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService 创建收藏夹服务
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// List 用户收藏列表
func (s *WishlistService) List(userID uint) ([]models.WishlistItem, error) {
	return s.wishlistRepo.ListByUser(userID)
}

// Add 加入收藏，重复加入返回 ErrWishlistItemExists
func (s *WishlistService) Add(userID, productID uint) (*models.WishlistItem, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	existing, err := s.wishlistRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrWishlistItemExists
	}
	item := &models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.wishlistRepo.Create(item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// Remove 取消收藏
func (s *WishlistService) Remove(userID, itemID uint) error {
	affected, err := s.wishlistRepo.DeleteByIDAndUser(itemID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWishlistItemNotFound
	}
	return nil
}
