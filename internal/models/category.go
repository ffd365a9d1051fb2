package models

import (
	"time"
)

// Category 分类表
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                // 主键
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`   // 分类名称（唯一）
	Description string    `gorm:"type:text" json:"description"`                        // 描述
	ImageURL    string    `gorm:"type:varchar(500)" json:"imageUrl"`                   // 分类图片
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`                              // 创建时间
	UpdatedAt   time.Time `json:"updatedAt"`                                           // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
