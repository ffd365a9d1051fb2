package admin

import (
	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 创建/更新商品请求
type ProductRequest struct {
	Name          string        `json:"name" binding:"required,max=200"`
	Description   string        `json:"description"`
	MRP           *models.Money `json:"mrp" binding:"required"`
	Discount      models.Money  `json:"discount"`
	StockQuantity int           `json:"stockQuantity" binding:"gte=0"`
	CategoryID    uint          `json:"categoryId" binding:"required"`
	ImageURL      string        `json:"imageUrl"`
	IsReturn      bool          `json:"isReturn"`
	IsExchange    bool          `json:"isExchange"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		MRP:           *r.MRP,
		Discount:      r.Discount,
		StockQuantity: r.StockQuantity,
		CategoryID:    r.CategoryID,
		ImageURL:      r.ImageURL,
		IsReturn:      r.IsReturn,
		IsExchange:    r.IsExchange,
	}
}

func validateProductRequest(c *gin.Context, req ProductRequest) bool {
	if req.MRP.Decimal.IsNegative() {
		shared.RespondError(c, response.CodeBadRequest, "mrp must not be negative", nil)
		return false
	}
	if req.Discount.Decimal.IsNegative() || req.Discount.Decimal.GreaterThan(models.NewMoneyFromInt(100).Decimal) {
		shared.RespondError(c, response.CodeBadRequest, "discount must be between 0 and 100", nil)
		return false
	}
	return true
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if !shared.BindJSON(c, &req) || !validateProductRequest(c, req) {
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		shared.RespondMapped(c, err, productErrorRules)
		return
	}
	response.Created(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if !shared.BindJSON(c, &req) || !validateProductRequest(c, req) {
		return
	}
	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		shared.RespondMapped(c, err, productErrorRules)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		shared.RespondMapped(c, err, productErrorRules)
		return
	}
	response.NoContent(c)
}
