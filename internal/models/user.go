package models

import (
	"time"
)

// User 用户表
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`                                           // 主键
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`          // 用户名
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`            // 邮箱
	PasswordHash string     `gorm:"not null" json:"-"`                                              // 密码哈希（不返回给前端）
	Role         string     `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`     // 角色（user/admin）
	TokenVersion uint64     `gorm:"not null;default:0" json:"-"`                                    // Token 版本（用于全量失效）
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`                                          // 最后登录时间
	CreatedAt    time.Time  `gorm:"index" json:"createdAt"`                                         // 创建时间
	UpdatedAt    time.Time  `json:"updatedAt"`                                                      // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
