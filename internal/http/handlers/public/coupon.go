package public

import (
	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// ValidateCouponRequest 优惠码校验请求
type ValidateCouponRequest struct {
	Code   string                   `json:"code" binding:"required"`
	Amount models.Money             `json:"amount"`
	Items  []ValidateCouponLineItem `json:"items"`
}

// ValidateCouponLineItem 参与适用范围判断的购物车行
type ValidateCouponLineItem struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

// ValidateCoupon 校验优惠码
func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	if req.Amount.Decimal.IsNegative() {
		shared.RespondError(c, response.CodeBadRequest, "amount must not be negative", nil)
		return
	}

	lines, ok := h.buildCouponLines(c, req.Items)
	if !ok {
		return
	}

	quote, err := h.CouponService.Validate(service.ValidateCouponInput{
		Code:   req.Code,
		Amount: req.Amount,
		UserID: shared.OptionalUserID(c),
		Lines:  lines,
	})
	if err != nil {
		shared.RespondMapped(c, err, couponErrorRules)
		return
	}
	response.Success(c, quote)
}

// ListActiveCoupons 当前可用优惠券
func (h *Handler) ListActiveCoupons(c *gin.Context) {
	coupons, err := h.CouponService.ListActive(c.Request.Context())
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load coupons", err)
		return
	}
	response.Success(c, coupons)
}

// buildCouponLines 按当前售价构造购物车行
func (h *Handler) buildCouponLines(c *gin.Context, items []ValidateCouponLineItem) ([]service.CouponLine, bool) {
	if len(items) == 0 {
		return nil, true
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := h.ProductRepo.ListByIDs(ids)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load products", err)
		return nil, false
	}
	productMap := make(map[uint]models.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	lines := make([]service.CouponLine, 0, len(items))
	for _, item := range items {
		product, ok := productMap[item.ProductID]
		if !ok {
			shared.RespondError(c, response.CodeNotFound, service.ErrProductNotFound.Error(), nil)
			return nil, false
		}
		lines = append(lines, service.CouponLine{
			ProductID:  product.ID,
			CategoryID: product.CategoryID,
			Subtotal:   product.SellingPrice.MulInt(item.Quantity),
		})
	}
	return lines, true
}
