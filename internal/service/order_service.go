package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/queue"
	"github.com/shopfront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// amountTolerance 客户端金额与服务端计算金额允许的误差
var amountTolerance = decimal.New(1, -2)

// OrderService 订单服务
type OrderService struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	couponRepo      repository.CouponRepository
	couponUsageRepo repository.CouponUsageRepository
	cartRepo        repository.CartRepository
	couponService   *CouponService
	queueClient     *queue.Client
}

// OrderServiceOptions 订单服务依赖
type OrderServiceOptions struct {
	OrderRepo       repository.OrderRepository
	ProductRepo     repository.ProductRepository
	CouponRepo      repository.CouponRepository
	CouponUsageRepo repository.CouponUsageRepository
	CartRepo        repository.CartRepository
	CouponService   *CouponService
	QueueClient     *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(opts OrderServiceOptions) *OrderService {
	return &OrderService{
		orderRepo:       opts.OrderRepo,
		productRepo:     opts.ProductRepo,
		couponRepo:      opts.CouponRepo,
		couponUsageRepo: opts.CouponUsageRepo,
		cartRepo:        opts.CartRepo,
		couponService:   opts.CouponService,
		queueClient:     opts.QueueClient,
	}
}

// PlaceOrderItem 下单项
type PlaceOrderItem struct {
	ProductID uint
	Quantity  int
	// Price 客户端展示价，仅作参考
	Price models.Money
}

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	UserID          uint
	Items           []PlaceOrderItem
	TotalAmount     models.Money
	ShippingAddress string
	PaymentMethod   string
	CouponCode      string
}

// PlaceOrder 在单个事务内创建订单、订单项、扣减库存、核销优惠券并移出购物车
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrOrderInvalid
	}
	shippingAddress := strings.TrimSpace(input.ShippingAddress)
	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if shippingAddress == "" || paymentMethod == "" {
		return nil, fmt.Errorf("%w: shipping address and payment method are required", ErrOrderInvalid)
	}
	items, err := mergeOrderItems(input.Items)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		couponRepo := s.couponRepo.WithTx(tx)
		couponUsageRepo := s.couponUsageRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)

		productIDs := make([]uint, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}
		products, err := productRepo.ListByIDs(productIDs)
		if err != nil {
			return err
		}
		productMap := make(map[uint]models.Product, len(products))
		for _, product := range products {
			productMap[product.ID] = product
		}

		subtotal := models.NewMoneyFromInt(0)
		orderItems := make([]models.OrderItem, 0, len(items))
		lines := make([]CouponLine, 0, len(items))
		for _, item := range items {
			product, ok := productMap[item.ProductID]
			if !ok {
				return fmt.Errorf("%w: %d", ErrProductNotFound, item.ProductID)
			}
			lineTotal := product.SellingPrice.MulInt(item.Quantity)
			subtotal = subtotal.Add(lineTotal)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.SellingPrice,
			})
			lines = append(lines, CouponLine{
				ProductID:  product.ID,
				CategoryID: product.CategoryID,
				Subtotal:   lineTotal,
			})
		}

		discount := models.NewMoneyFromInt(0)
		var coupon *models.Coupon
		if code := strings.TrimSpace(input.CouponCode); code != "" {
			quote, err := s.couponService.quote(couponRepo, orderRepo, ValidateCouponInput{
				Code:   code,
				Amount: subtotal,
				UserID: input.UserID,
				Lines:  lines,
			})
			if err != nil {
				return err
			}
			coupon = quote.Coupon
			discount = quote.Discount
		}

		total := subtotal.Sub(discount)
		if total.Decimal.IsNegative() {
			total = models.NewMoneyFromInt(0)
		}
		if total.Decimal.Sub(input.TotalAmount.Decimal).Abs().GreaterThan(amountTolerance) {
			return fmt.Errorf("%w: expected %s", ErrOrderAmountMismatch, total.String())
		}

		order = &models.Order{
			OrderNo:         generateOrderNo(),
			UserID:          input.UserID,
			Status:          constants.OrderStatusPending,
			SubtotalAmount:  subtotal,
			DiscountAmount:  discount,
			TotalAmount:     total,
			ShippingAddress: shippingAddress,
			PaymentMethod:   paymentMethod,
		}
		if coupon != nil {
			order.CouponID = &coupon.ID
		}
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}

		for _, item := range orderItems {
			if err := productRepo.DecrementStock(item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %d", ErrProductNotFound, item.ProductID)
				}
				return err
			}
		}

		if coupon != nil {
			ok, err := couponRepo.IncrementUsageCount(coupon.ID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrCouponUsageLimit
			}
			usage := &models.CouponUsage{
				CouponID:       coupon.ID,
				UserID:         input.UserID,
				OrderID:        order.ID,
				DiscountAmount: discount,
			}
			if err := couponUsageRepo.Create(usage); err != nil {
				return err
			}
		}

		return cartRepo.DeleteByUserAndProducts(input.UserID, productIDs)
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderPlaced(queue.OrderEventPayload{
		OrderID: order.ID,
		Status:  order.Status,
	}); err != nil {
		logger.Warnw("order_enqueue_placed_failed", "order_id", order.ID, "order_no", order.OrderNo, "error", err)
	}

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrOrderNotFound
	}
	return created, nil
}

// GetOrder 获取订单详情，仅下单用户与管理员可见
func (s *OrderService) GetOrder(actorID uint, actorRole string, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != actorID && actorRole != constants.RoleAdmin {
		return nil, ErrForbidden
	}
	return order, nil
}

// ListByUser 用户订单列表，仅本人与管理员可查
func (s *OrderService) ListByUser(actorID uint, actorRole string, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID != actorID && actorRole != constants.RoleAdmin {
		return nil, 0, ErrForbidden
	}
	return s.orderRepo.ListByUser(filter)
}

// ListAll 管理端订单列表
func (s *OrderService) ListAll(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" && !isKnownOrderStatus(filter.Status) {
		return nil, 0, ErrOrderStatusInvalid
	}
	return s.orderRepo.ListAdmin(filter)
}

// mergeOrderItems 校验下单项并合并重复商品
func mergeOrderItems(items []PlaceOrderItem) ([]PlaceOrderItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items are required", ErrOrderInvalid)
	}
	merged := make([]PlaceOrderItem, 0, len(items))
	index := make(map[uint]int, len(items))
	for _, item := range items {
		if item.ProductID == 0 {
			return nil, fmt.Errorf("%w: product id is required", ErrOrderInvalid)
		}
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if pos, ok := index[item.ProductID]; ok {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged, nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("%s%s%s", constants.OrderNoPrefix, now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
