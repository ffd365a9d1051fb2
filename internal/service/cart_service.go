package service

import (
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// List 获取用户购物车，按加入时间倒序
func (s *CartService) List(userID uint) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(userID)
}

// AddItem 加入购物车，已存在时累加数量
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		total := existing.Quantity + quantity
		if total > product.StockQuantity {
			return nil, ErrInsufficientStock
		}
		if err := s.cartRepo.UpdateQuantity(existing.ID, total); err != nil {
			return nil, err
		}
		existing.Quantity = total
		existing.Product = product
		return existing, nil
	}

	if quantity > product.StockQuantity {
		return nil, ErrInsufficientStock
	}
	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// UpdateItem 直接设置购物车项数量
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.cartRepo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if quantity > product.StockQuantity {
		return nil, ErrInsufficientStock
	}
	if err := s.cartRepo.UpdateQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	item.Product = product
	return item, nil
}

// RemoveItem 删除购物车项，不存在时视为成功
func (s *CartService) RemoveItem(userID, itemID uint) error {
	_, err := s.cartRepo.DeleteByIDAndUser(itemID, userID)
	return err
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.ClearByUser(userID)
}
