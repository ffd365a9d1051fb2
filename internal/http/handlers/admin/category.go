package admin

import (
	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 创建/更新分类请求
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	category, err := h.CategoryService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		shared.RespondMapped(c, err, categoryErrorRules)
		return
	}
	response.Created(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	category, err := h.CategoryService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		shared.RespondMapped(c, err, categoryErrorRules)
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(c.Request.Context(), id); err != nil {
		shared.RespondMapped(c, err, categoryErrorRules)
		return
	}
	response.NoContent(c)
}
