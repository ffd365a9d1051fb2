package models

import (
	"time"
)

// Banner 首页轮播图
type Banner struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                // 主键
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`             // 标题
	Description string    `gorm:"type:text" json:"description"`                        // 描述
	ImageURL    string    `gorm:"type:varchar(500);not null" json:"imageUrl"`          // 图片
	Link        string    `gorm:"type:varchar(1000)" json:"link"`                      // 跳转链接
	IsActive    bool      `gorm:"not null;index" json:"isActive"`                      // 是否启用
	SortOrder   int       `gorm:"not null;default:0;index" json:"sortOrder"`           // 排序
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`                              // 创建时间
	UpdatedAt   time.Time `json:"updatedAt"`                                           // 更新时间
}

// TableName 指定表名
func (Banner) TableName() string {
	return "banners"
}
