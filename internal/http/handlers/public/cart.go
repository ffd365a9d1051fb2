package public

import (
	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

// UpdateCartItemRequest 更新购物车数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	items, err := h.CartService.List(uid)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load cart", err)
		return
	}
	response.Success(c, items)
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	item, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		shared.RespondMapped(c, err, cartErrorRules)
		return
	}
	response.Created(c, item)
}

// UpdateCartItem 更新购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	item, err := h.CartService.UpdateItem(uid, id, req.Quantity)
	if err != nil {
		shared.RespondMapped(c, err, cartErrorRules)
		return
	}
	response.Success(c, item)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(uid, id); err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to remove cart item", err)
		return
	}
	response.NoContent(c)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to clear cart", err)
		return
	}
	response.NoContent(c)
}
