package service

import (
	"strings"

	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

// ProductService 商品业务服务
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{repo: repo, categoryRepo: categoryRepo}
}

// ProductInput 创建/更新商品输入，售价由标价与折扣推导
type ProductInput struct {
	Name          string
	Description   string
	MRP           models.Money
	Discount      models.Money
	StockQuantity int
	CategoryID    uint
	ImageURL      string
	IsReturn      bool
	IsExchange    bool
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.WithCategory = true
	return s.repo.List(filter)
}

// Get 获取商品详情
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	category, err := s.requireCategory(input.CategoryID)
	if err != nil {
		return nil, err
	}
	product := &models.Product{}
	applyProductInput(product, input)
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	product.Category = category
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	category, err := s.requireCategory(input.CategoryID)
	if err != nil {
		return nil, err
	}
	applyProductInput(product, input)
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	product.Category = category
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.repo.Delete(id)
}

func (s *ProductService) requireCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func applyProductInput(product *models.Product, input ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.MRP = input.MRP
	product.Discount = input.Discount
	product.StockQuantity = input.StockQuantity
	product.CategoryID = input.CategoryID
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	product.IsReturn = input.IsReturn
	product.IsExchange = input.IsExchange
}
