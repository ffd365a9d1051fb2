package events

import (
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"

	"github.com/google/uuid"
)

// OrderEvent 订单事件消息
type OrderEvent struct {
	EventID     string       `json:"eventId"`
	Type        string       `json:"type"`
	OrderID     uint         `json:"orderId"`
	OrderNo     string       `json:"orderNo"`
	UserID      uint         `json:"userId"`
	Status      string       `json:"status"`
	FromStatus  string       `json:"fromStatus,omitempty"`
	TotalAmount models.Money `json:"totalAmount"`
	OccurredAt  time.Time    `json:"occurredAt"`
}

// NewOrderPlacedEvent 构造下单事件
func NewOrderPlacedEvent(order *models.Order) OrderEvent {
	return newOrderEvent(constants.OrderEventPlaced, order, "")
}

// NewOrderStatusChangedEvent 构造状态变更事件
func NewOrderStatusChangedEvent(order *models.Order, fromStatus string) OrderEvent {
	return newOrderEvent(constants.OrderEventStatusChanged, order, fromStatus)
}

func newOrderEvent(eventType string, order *models.Order, fromStatus string) OrderEvent {
	return OrderEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		UserID:      order.UserID,
		Status:      order.Status,
		FromStatus:  fromStatus,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
}
