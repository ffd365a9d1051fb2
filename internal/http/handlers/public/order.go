package public

import (
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest 订单项请求
type OrderItemRequest struct {
	ProductID uint         `json:"productId" binding:"required"`
	Quantity  int          `json:"quantity" binding:"required,gte=1"`
	Price     models.Money `json:"price"`
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	UserID          uint               `json:"userId" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount     *models.Money      `json:"totalAmount" binding:"required"`
	ShippingAddress string             `json:"shippingAddress" binding:"required"`
	PaymentMethod   string             `json:"paymentMethod" binding:"required"`
	CouponCode      string             `json:"couponCode"`
}

// CreateOrder 创建订单
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	if req.UserID != uid && shared.GetUserRole(c) != constants.RoleAdmin {
		shared.RespondError(c, response.CodeForbidden, "cannot place an order for another user", nil)
		return
	}

	items := make([]service.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PlaceOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.OrderService.PlaceOrder(service.PlaceOrderInput{
		UserID:          req.UserID,
		Items:           items,
		TotalAmount:     *req.TotalAmount,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		CouponCode:      req.CouponCode,
	})
	if err != nil {
		shared.RespondMapped(c, err, orderErrorRules)
		return
	}
	response.Created(c, order)
}

// ListUserOrders 用户订单列表
func (h *Handler) ListUserOrders(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	targetID, ok := shared.ParseIDParam(c, "userId")
	if !ok {
		return
	}
	page, pageSize := shared.ParsePagination(c)

	orders, total, err := h.OrderService.ListByUser(uid, shared.GetUserRole(c), repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   targetID,
		Status:   c.Query("status"),
	})
	if err != nil {
		shared.RespondMapped(c, err, orderErrorRules)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetOrder(uid, shared.GetUserRole(c), id)
	if err != nil {
		shared.RespondMapped(c, err, orderErrorRules)
		return
	}
	response.Success(c, order)
}
