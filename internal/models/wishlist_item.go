package models

import (
	"time"
)

// WishlistItem 心愿单
type WishlistItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"productId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 指定表名
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
