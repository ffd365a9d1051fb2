package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// CouponRequest 创建/更新优惠券请求
type CouponRequest struct {
	Code                 string        `json:"code" binding:"required,max=50"`
	Name                 string        `json:"name" binding:"required,max=100"`
	Description          string        `json:"description"`
	DiscountType         string        `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue        *models.Money `json:"discountValue" binding:"required"`
	MinPurchaseAmount    models.Money  `json:"minPurchaseAmount"`
	MaxDiscountAmount    *models.Money `json:"maxDiscountAmount"`
	StartDate            string        `json:"startDate" binding:"required"`
	EndDate              string        `json:"endDate" binding:"required"`
	UsageLimit           *int          `json:"usageLimit" binding:"omitempty,gte=1"`
	IsActive             *bool         `json:"isActive"`
	IsFirstTimeUser      bool          `json:"isFirstTimeUser"`
	ApplicableCategories []uint        `json:"applicableCategories"`
	ApplicableProducts   []uint        `json:"applicableProducts"`
}

func (r CouponRequest) toInput() (service.CouponInput, error) {
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return service.CouponInput{}, err
	}
	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return service.CouponInput{}, err
	}
	return service.CouponInput{
		Code:                 r.Code,
		Name:                 r.Name,
		Description:          r.Description,
		DiscountType:         r.DiscountType,
		DiscountValue:        *r.DiscountValue,
		MinPurchaseAmount:    r.MinPurchaseAmount,
		MaxDiscountAmount:    r.MaxDiscountAmount,
		StartDate:            startDate,
		EndDate:              endDate,
		UsageLimit:           r.UsageLimit,
		IsActive:             r.IsActive,
		IsFirstTimeUser:      r.IsFirstTimeUser,
		ApplicableCategories: r.ApplicableCategories,
		ApplicableProducts:   r.ApplicableProducts,
	}, nil
}

// ListCoupons 优惠券列表
func (h *Handler) ListCoupons(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.CouponListFilter{
		Code:     strings.TrimSpace(c.Query("code")),
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := strings.TrimSpace(c.Query("isActive")); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}
	coupons, total, err := h.CouponAdminService.List(filter)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load coupons", err)
		return
	}
	response.SuccessWithPage(c, coupons, response.BuildPagination(page, pageSize, total))
}

// CreateCoupon 创建优惠券
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	input, err := req.toInput()
	if err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid date, expected RFC3339 or YYYY-MM-DD", nil)
		return
	}
	coupon, err := h.CouponAdminService.Create(c.Request.Context(), input)
	if err != nil {
		shared.RespondMapped(c, err, couponErrorRules)
		return
	}
	response.Created(c, coupon)
}

// UpdateCoupon 更新优惠券
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req CouponRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	input, err := req.toInput()
	if err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid date, expected RFC3339 or YYYY-MM-DD", nil)
		return
	}
	coupon, err := h.CouponAdminService.Update(c.Request.Context(), id, input)
	if err != nil {
		shared.RespondMapped(c, err, couponErrorRules)
		return
	}
	response.Success(c, coupon)
}

// DeleteCoupon 删除优惠券
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CouponAdminService.Delete(c.Request.Context(), id); err != nil {
		shared.RespondMapped(c, err, couponErrorRules)
		return
	}
	response.NoContent(c)
}

// parseDate 支持 RFC3339 与纯日期（按 UTC 零点）
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}
