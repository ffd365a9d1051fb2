package models

import (
	"time"
)

// Order 订单表
type Order struct {
	ID              uint       `gorm:"primarykey" json:"id"`                                        // 主键
	OrderNo         string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"orderNo"`        // 订单编号
	UserID          uint       `gorm:"index;not null" json:"userId"`                                // 用户ID
	Status          string     `gorm:"type:varchar(20);index;not null" json:"status"`               // 订单状态
	SubtotalAmount  Money      `gorm:"type:decimal(20,2);not null;default:0" json:"subtotalAmount"` // 商品小计
	DiscountAmount  Money      `gorm:"type:decimal(20,2);not null;default:0" json:"discountAmount"` // 优惠金额
	TotalAmount     Money      `gorm:"type:decimal(20,2);not null;default:0" json:"totalAmount"`    // 实付金额
	CouponID        *uint      `gorm:"index" json:"couponId,omitempty"`                             // 优惠券ID
	ShippingAddress string     `gorm:"type:text;not null" json:"shippingAddress"`                   // 收货地址
	PaymentMethod   string     `gorm:"type:varchar(50);not null" json:"paymentMethod"`              // 支付方式
	CanceledAt      *time.Time `json:"canceledAt,omitempty"`                                        // 取消时间
	CreatedAt       time.Time  `gorm:"index" json:"createdAt"`                                      // 创建时间
	UpdatedAt       time.Time  `json:"updatedAt"`                                                   // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`   // 下单用户
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
