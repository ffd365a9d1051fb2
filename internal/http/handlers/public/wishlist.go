package public

import (
	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddWishlistRequest 加入收藏请求
type AddWishlistRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// GetWishlist 收藏列表
func (h *Handler) GetWishlist(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.List(uid)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load wishlist", err)
		return
	}
	response.Success(c, items)
}

// AddWishlistItem 加入收藏
func (h *Handler) AddWishlistItem(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	var req AddWishlistRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	item, err := h.WishlistService.Add(uid, req.ProductID)
	if err != nil {
		shared.RespondMapped(c, err, wishlistErrorRules)
		return
	}
	response.Created(c, item)
}

// RemoveWishlistItem 取消收藏
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.WishlistService.Remove(uid, id); err != nil {
		shared.RespondMapped(c, err, wishlistErrorRules)
		return
	}
	response.NoContent(c)
}
