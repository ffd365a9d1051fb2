package models

import (
	"strings"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const defaultAdminPassword = "admin123"

// InitDefaultAdmin 初始化默认管理员账号，已存在管理员时不做任何操作
func InitDefaultAdmin(username, email, password string) error {
	var count int64
	if err := DB.Model(&User{}).Where("role = ?", constants.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = "admin"
	}
	email = strings.TrimSpace(email)
	if email == "" {
		email = "admin@example.com"
	}
	if password == "" {
		password = defaultAdminPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == defaultAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
		logger.Warnw("default_admin_password_change_required", "username", username)
	} else {
		logger.Warnw("default_admin_created", "username", username, "password_hidden", true)
	}
	return nil
}
