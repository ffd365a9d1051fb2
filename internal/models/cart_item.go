package models

import (
	"time"
)

// CartItem 购物车项，(UserID, ProductID) 唯一
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                        // 主键
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`    // 用户ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"` // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                    // 数量
	CreatedAt time.Time `gorm:"index" json:"createdAt"`                                      // 创建时间
	UpdatedAt time.Time `json:"updatedAt"`                                                   // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
