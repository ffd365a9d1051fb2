package models

import (
	"time"
)

// Coupon 优惠券
type Coupon struct {
	ID                   uint      `gorm:"primarykey" json:"id"`                                                     // 主键
	Code                 string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`                        // 优惠码
	Name                 string    `gorm:"type:varchar(100);not null" json:"name"`                                   // 名称
	Description          string    `gorm:"type:text" json:"description"`                                             // 描述
	DiscountType         string    `gorm:"type:varchar(20);not null" json:"discountType"`                            // 类型（percentage/fixed）
	DiscountValue        Money     `gorm:"type:decimal(20,2);not null" json:"discountValue"`                         // 数值（百分比或固定金额）
	MinPurchaseAmount    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"minPurchaseAmount"`           // 使用门槛（0 表示不限制）
	MaxDiscountAmount    *Money    `gorm:"type:decimal(20,2)" json:"maxDiscountAmount"`                              // 最大优惠金额（仅百分比）
	StartDate            time.Time `gorm:"not null;index" json:"startDate"`                                          // 生效时间
	EndDate              time.Time `gorm:"not null;index" json:"endDate"`                                            // 失效时间
	UsageLimit           *int      `json:"usageLimit"`                                                               // 总使用上限（空表示不限制）
	UsageCount           int       `gorm:"not null;default:0" json:"usageCount"`                                     // 已使用次数
	IsActive             bool      `gorm:"not null;index" json:"isActive"`                                           // 是否启用
	IsFirstTimeUser      bool      `gorm:"not null;default:false" json:"isFirstTimeUser"`                            // 是否仅限首单
	ApplicableCategories IDList    `gorm:"type:text" json:"applicableCategories"`                                    // 适用分类ID
	ApplicableProducts   IDList    `gorm:"type:text" json:"applicableProducts"`                                      // 适用商品ID
	CreatedAt            time.Time `gorm:"index" json:"createdAt"`                                                   // 创建时间
	UpdatedAt            time.Time `json:"updatedAt"`                                                                // 更新时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}

// HasScope 是否配置了适用范围
func (c *Coupon) HasScope() bool {
	return len(c.ApplicableCategories) > 0 || len(c.ApplicableProducts) > 0
}
