package worker

import (
	"context"
	"fmt"

	"github.com/shopfront/internal/events"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/provider"
	"github.com/shopfront/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
	mux.HandleFunc(queue.TaskOrderStatusChanged, c.handleOrderStatusChanged)
}

func (c *Consumer) handleOrderPlaced(ctx context.Context, task *asynq.Task) error {
	return c.publishOrderEvent(ctx, task, queue.TaskOrderPlaced)
}

func (c *Consumer) handleOrderStatusChanged(ctx context.Context, task *asynq.Task) error {
	return c.publishOrderEvent(ctx, task, queue.TaskOrderStatusChanged)
}

// publishOrderEvent 加载订单并投递事件，订单不存在时丢弃任务
func (c *Consumer) publishOrderEvent(ctx context.Context, task *asynq.Task, taskType string) error {
	if c == nil || c.Container == nil || task == nil {
		logger.Debugw("worker_order_event_skip_nil", "task_type", taskType)
		return nil
	}
	payload, err := queue.ParseOrderEventPayload(task.Payload())
	if err != nil {
		logger.Warnw("worker_order_event_unmarshal_failed", "task_type", taskType, "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_event_skip_invalid_payload", "task_type", taskType)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_event_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_event_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	var event events.OrderEvent
	if taskType == queue.TaskOrderPlaced {
		event = events.NewOrderPlacedEvent(order)
	} else {
		event = events.NewOrderStatusChangedEvent(order, payload.FromStatus)
		if payload.Status != "" {
			event.Status = payload.Status
		}
	}

	if c.EventPublisher == nil {
		logger.Warnw("worker_order_event_skip_publisher_nil", "order_no", order.OrderNo)
		return nil
	}
	if err := c.EventPublisher.Publish(ctx, event); err != nil {
		logger.Warnw("worker_order_event_publish_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"type", event.Type,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_order_event_published", "order_no", order.OrderNo, "type", event.Type, "event_id", event.EventID)
	return nil
}
