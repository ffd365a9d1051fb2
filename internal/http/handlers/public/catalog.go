package public

import (
	"strconv"
	"strings"

	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, categories)
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	categoryID, _ := strconv.ParseUint(c.Query("categoryId"), 10, 64)
	inStock, _ := strconv.ParseBool(c.Query("inStock"))

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:        page,
		PageSize:    pageSize,
		CategoryID:  uint(categoryID),
		Search:      strings.TrimSpace(c.Query("search")),
		InStockOnly: inStock,
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load products", err)
		return
	}
	response.SuccessWithPage(c, products, response.BuildPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		shared.RespondMapped(c, err, catalogErrorRules)
		return
	}
	response.Success(c, product)
}

// ListBanners 前台 Banner
func (h *Handler) ListBanners(c *gin.Context) {
	banners, err := h.BannerService.ListPublic(c.Request.Context())
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load banners", err)
		return
	}
	response.Success(c, banners)
}
