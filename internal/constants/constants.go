package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 用户角色常量
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// 优惠券类型常量
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// 订单事件类型常量
const (
	OrderEventPlaced        = "order.placed"
	OrderEventStatusChanged = "order.status_changed"
)

// 上下文键
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRole      = "user_role"
	ContextKeyRequestID = "request_id"
)

// 订单号前缀
const OrderNoPrefix = "SF"

// 异步任务常量
const (
	TaskOrderPlaced        = "order:placed"
	TaskOrderStatusChanged = "order:status_changed"
)

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)
