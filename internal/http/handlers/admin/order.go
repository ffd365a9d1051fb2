package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 订单状态更新请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders 管理端订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		OrderNo:  strings.TrimSpace(c.Query("orderNo")),
	}
	if raw := strings.TrimSpace(c.Query("userId")); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.UserID = uint(parsed)
		}
	}
	createdFrom, err := parseTimeNullable(c.Query("createdFrom"))
	if err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid createdFrom", nil)
		return
	}
	createdTo, err := parseTimeNullable(c.Query("createdTo"))
	if err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid createdTo", nil)
		return
	}
	filter.CreatedFrom = createdFrom
	filter.CreatedTo = createdTo

	orders, total, err := h.OrderService.ListAll(filter)
	if err != nil {
		shared.RespondMapped(c, err, orderErrorRules)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// UpdateOrderStatus 更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	order, err := h.OrderService.UpdateStatus(id, strings.ToLower(strings.TrimSpace(req.Status)))
	if err != nil {
		shared.RespondMapped(c, err, orderErrorRules)
		return
	}
	response.Success(c, order)
}

func parseTimeNullable(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
