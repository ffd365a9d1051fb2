package queue

import (
	"encoding/json"

	"github.com/shopfront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlaced 下单成功任务
	TaskOrderPlaced = constants.TaskOrderPlaced
	// TaskOrderStatusChanged 订单状态变更任务
	TaskOrderStatusChanged = constants.TaskOrderStatusChanged
)

// OrderEventPayload 订单事件任务载荷
type OrderEventPayload struct {
	OrderID    uint   `json:"order_id"`
	Status     string `json:"status"`
	FromStatus string `json:"from_status,omitempty"`
}

// NewOrderPlacedTask 创建下单成功任务
func NewOrderPlacedTask(payload OrderEventPayload) (*asynq.Task, error) {
	return newOrderTask(TaskOrderPlaced, payload)
}

// NewOrderStatusChangedTask 创建订单状态变更任务
func NewOrderStatusChangedTask(payload OrderEventPayload) (*asynq.Task, error) {
	return newOrderTask(TaskOrderStatusChanged, payload)
}

// ParseOrderEventPayload 解析订单事件任务载荷
func ParseOrderEventPayload(body []byte) (OrderEventPayload, error) {
	var payload OrderEventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return OrderEventPayload{}, err
	}
	return payload, nil
}

func newOrderTask(taskType string, payload OrderEventPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, body, asynq.MaxRetry(5)), nil
}
