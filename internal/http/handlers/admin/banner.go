package admin

import (
	"strconv"
	"strings"

	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/repository"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// BannerRequest 创建/更新 Banner 请求
type BannerRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	Link        string `json:"link"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
}

func (r BannerRequest) toInput() service.BannerInput {
	return service.BannerInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Link:        r.Link,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// ListBanners 管理端 Banner 列表
func (h *Handler) ListBanners(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.BannerListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if raw := strings.TrimSpace(c.Query("isActive")); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}
	banners, total, err := h.BannerService.List(filter)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load banners", err)
		return
	}
	response.SuccessWithPage(c, banners, response.BuildPagination(page, pageSize, total))
}

// CreateBanner 创建 Banner
func (h *Handler) CreateBanner(c *gin.Context) {
	var req BannerRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	banner, err := h.BannerService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		shared.RespondMapped(c, err, bannerErrorRules)
		return
	}
	response.Created(c, banner)
}

// UpdateBanner 更新 Banner
func (h *Handler) UpdateBanner(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req BannerRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	banner, err := h.BannerService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		shared.RespondMapped(c, err, bannerErrorRules)
		return
	}
	response.Success(c, banner)
}

// DeleteBanner 删除 Banner
func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.BannerService.Delete(c.Request.Context(), id); err != nil {
		shared.RespondMapped(c, err, bannerErrorRules)
		return
	}
	response.NoContent(c)
}
