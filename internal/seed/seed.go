package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
	"github.com/shopfront/internal/service"

	"gorm.io/gorm"
)

// Result 初始化数据统计
type Result struct {
	AdminCreated      bool `json:"adminCreated"`
	CategoriesCreated int  `json:"categoriesCreated"`
	ProductsCreated   int  `json:"productsCreated"`
}

type demoProduct struct {
	Name     string
	MRP      string
	Discount string
	Stock    int
}

type demoCategory struct {
	Name        string
	Description string
	Products    []demoProduct
}

var demoCatalog = []demoCategory{
	{
		Name:        "Electronics",
		Description: "Phones, audio and accessories",
		Products: []demoProduct{
			{Name: "Wireless Headphones", MRP: "2999", Discount: "15", Stock: 50},
			{Name: "USB-C Charger 65W", MRP: "1499", Discount: "10", Stock: 120},
		},
	},
	{
		Name:        "Clothing",
		Description: "Everyday apparel",
		Products: []demoProduct{
			{Name: "Cotton T-Shirt", MRP: "799", Discount: "20", Stock: 200},
			{Name: "Denim Jacket", MRP: "3499", Discount: "0", Stock: 40},
		},
	},
	{
		Name:        "Home & Kitchen",
		Description: "Cookware and home essentials",
		Products: []demoProduct{
			{Name: "Steel Water Bottle", MRP: "599", Discount: "5", Stock: 150},
		},
	},
}

// Seeder 演示数据初始化器，可重复执行
type Seeder struct {
	cfg          *config.Config
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	authService  *service.AuthService
	userAdmin    *service.UserAdminService
	categories   *service.CategoryService
	products     *service.ProductService
}

// NewSeeder 创建初始化器
func NewSeeder(cfg *config.Config, db *gorm.DB) *Seeder {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	authService := service.NewAuthService(cfg, userRepo)
	return &Seeder{
		cfg:          cfg,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		authService:  authService,
		userAdmin:    service.NewUserAdminService(userRepo, authService),
		categories:   service.NewCategoryService(categoryRepo),
		products:     service.NewProductService(productRepo, categoryRepo),
	}
}

// Run 写入默认管理员与演示目录，已存在的数据跳过
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var result Result

	created, err := s.ensureAdmin()
	if err != nil {
		return result, err
	}
	result.AdminCreated = created

	for _, demo := range demoCatalog {
		category, created, err := s.ensureCategory(ctx, demo)
		if err != nil {
			return result, err
		}
		if created {
			result.CategoriesCreated++
		}
		for _, item := range demo.Products {
			created, err := s.ensureProduct(category.ID, item)
			if err != nil {
				return result, err
			}
			if created {
				result.ProductsCreated++
			}
		}
	}

	logger.Infow("seed_completed",
		"admin_created", result.AdminCreated,
		"categories_created", result.CategoriesCreated,
		"products_created", result.ProductsCreated,
	)
	return result, nil
}

// CreateAdmin 创建管理员账号
func (s *Seeder) CreateAdmin(username, email, password string) (*models.User, error) {
	return s.userAdmin.Create(service.CreateUserInput{
		Username: username,
		Email:    email,
		Password: password,
		Role:     constants.RoleAdmin,
	})
}

func (s *Seeder) ensureAdmin() (bool, error) {
	_, total, err := s.userRepo.List(repository.UserListFilter{Page: 1, PageSize: 1, Role: constants.RoleAdmin})
	if err != nil {
		return false, err
	}
	if total > 0 {
		return false, nil
	}
	password := s.cfg.Bootstrap.AdminPassword
	if password == "" {
		password = "admin123"
		logger.Warnw("seed_admin_default_password", "hint", "change the admin password after first login")
	}
	if _, err := s.CreateAdmin(s.cfg.Bootstrap.AdminUsername, s.cfg.Bootstrap.AdminEmail, password); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) ensureCategory(ctx context.Context, demo demoCategory) (*models.Category, bool, error) {
	category, err := s.categories.Create(ctx, service.CategoryInput{
		Name:        demo.Name,
		Description: demo.Description,
	})
	if err == nil {
		return category, true, nil
	}
	if !errors.Is(err, service.ErrCategoryExists) {
		return nil, false, err
	}
	existing, err := s.categoryRepo.List()
	if err != nil {
		return nil, false, err
	}
	for i := range existing {
		if strings.EqualFold(existing[i].Name, demo.Name) {
			return &existing[i], false, nil
		}
	}
	return nil, false, service.ErrCategoryNotFound
}

func (s *Seeder) ensureProduct(categoryID uint, item demoProduct) (bool, error) {
	existing, _, err := s.productRepo.List(repository.ProductListFilter{
		Page:       1,
		PageSize:   50,
		CategoryID: categoryID,
		Search:     item.Name,
	})
	if err != nil {
		return false, err
	}
	for _, product := range existing {
		if strings.EqualFold(product.Name, item.Name) {
			return false, nil
		}
	}
	_, err = s.products.Create(service.ProductInput{
		Name:          item.Name,
		MRP:           models.MustMoney(item.MRP),
		Discount:      models.MustMoney(item.Discount),
		StockQuantity: item.Stock,
		CategoryID:    categoryID,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
