package service

import (
	"strings"
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/queue"

	"gorm.io/gorm"
)

var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
	},
}

// UpdateStatus 管理端更新订单状态，取消时回补库存并释放优惠券
func (s *OrderService) UpdateStatus(orderID uint, target string) (*models.Order, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if !isKnownOrderStatus(target) {
		return nil, ErrOrderStatusInvalid
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == target {
		return order, nil
	}
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderTransitionNotAllowed
	}

	fromStatus := order.Status
	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		updates := map[string]interface{}{}
		if target == constants.OrderStatusCancelled {
			updates["canceled_at"] = time.Now()
		}
		ok, err := orderRepo.UpdateStatus(order.ID, fromStatus, target, updates)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderStatusConflict
		}
		if target != constants.OrderStatusCancelled {
			return nil
		}

		productRepo := s.productRepo.WithTx(tx)
		for _, item := range order.Items {
			if err := productRepo.IncrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return s.releaseCoupon(tx, order)
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderStatusChanged(queue.OrderEventPayload{
		OrderID:    order.ID,
		Status:     target,
		FromStatus: fromStatus,
	}); err != nil {
		logger.Warnw("order_enqueue_status_changed_failed", "order_id", order.ID, "status", target, "error", err)
	}

	updated, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}
	return updated, nil
}

// releaseCoupon 删除核销记录并回退使用次数
func (s *OrderService) releaseCoupon(tx *gorm.DB, order *models.Order) error {
	if order.CouponID == nil {
		return nil
	}
	couponUsageRepo := s.couponUsageRepo.WithTx(tx)
	usage, err := couponUsageRepo.GetByOrderID(order.ID)
	if err != nil {
		return err
	}
	if usage == nil {
		return nil
	}
	if err := couponUsageRepo.DeleteByOrderID(order.ID); err != nil {
		return err
	}
	return s.couponRepo.WithTx(tx).DecrementUsageCount(usage.CouponID)
}

func isTransitionAllowed(current, target string) bool {
	if current == target {
		return true
	}
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

func isKnownOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPending,
		constants.OrderStatusProcessing,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled:
		return true
	}
	return false
}
