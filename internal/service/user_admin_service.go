package service

import (
	"context"
	"strings"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

// UserAdminService 管理端用户服务
type UserAdminService struct {
	userRepo    repository.UserRepository
	authService *AuthService
}

// NewUserAdminService 创建管理端用户服务
func NewUserAdminService(userRepo repository.UserRepository, authService *AuthService) *UserAdminService {
	return &UserAdminService{userRepo: userRepo, authService: authService}
}

// CreateUserInput 管理端创建用户输入
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput 管理端更新用户输入，空字段保持不变
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// List 用户列表
func (s *UserAdminService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// Get 获取用户
func (s *UserAdminService) Get(id uint) (*models.User, error) {
	return s.authService.GetUser(id)
}

// Create 创建用户
func (s *UserAdminService) Create(input CreateUserInput) (*models.User, error) {
	role, err := normalizeRole(input.Role)
	if err != nil {
		return nil, err
	}
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)
	if err := s.authService.ensureIdentityFree(username, email, 0); err != nil {
		return nil, err
	}
	if err := s.authService.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	hash, err := s.authService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update 更新用户，修改密码或角色会使已签发 token 失效
func (s *UserAdminService) Update(id uint, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)
	if err := s.authService.ensureIdentityFree(username, email, user.ID); err != nil {
		return nil, err
	}
	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}

	revoke := false
	if input.Role != "" {
		role, err := normalizeRole(input.Role)
		if err != nil {
			return nil, err
		}
		if role != user.Role {
			user.Role = role
			revoke = true
		}
	}
	if input.Password != "" {
		if err := s.authService.ValidatePassword(input.Password); err != nil {
			return nil, err
		}
		hash, err := s.authService.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		revoke = true
	}
	if revoke {
		user.TokenVersion++
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	if err := cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user)); err != nil {
		logger.Warnw("auth_state_cache_set_failed", "user_id", user.ID, "error", err)
	}
	return user, nil
}

// Delete 删除用户，禁止删除当前登录账号
func (s *UserAdminService) Delete(actorID, id uint) error {
	if actorID == id {
		return ErrCannotDeleteSelf
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}
	if err := cache.DelUserAuthState(context.Background(), id); err != nil {
		logger.Warnw("auth_state_cache_del_failed", "user_id", id, "error", err)
	}
	return nil
}

func normalizeRole(role string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "", constants.RoleUser:
		return constants.RoleUser, nil
	case constants.RoleAdmin:
		return constants.RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}
