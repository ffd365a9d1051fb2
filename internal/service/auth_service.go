package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopfront/internal/cache"
	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 认证服务
type AuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// RegisterInput 注册输入
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// JWTClaims JWT 声明
type JWTClaims struct {
	UserID       uint   `json:"userId"`
	Role         string `json:"role"`
	TokenVersion uint64 `json:"tokenVersion"`
	jwt.RegisteredClaims
}

// HashPassword 使用 bcrypt 加密密码
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePassword 校验密码是否符合策略
func (s *AuthService) ValidatePassword(password string) error {
	if s == nil || s.cfg == nil {
		return nil
	}
	return validatePassword(s.cfg.Security.PasswordPolicy, password)
}

// Register 注册普通用户
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)
	if err := s.ensureIdentityFree(username, email, 0); err != nil {
		return nil, err
	}
	if err := s.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         constants.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 用户登录，返回用户、token 与过期时间
func (s *AuthService) Login(email, password string) (*models.User, string, time.Time, error) {
	user, err := s.userRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := s.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", time.Time{}, err
	}
	if err := cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user)); err != nil {
		logger.Warnw("auth_state_cache_set_failed", "user_id", user.ID, "error", err)
	}
	return user, token, expiresAt, nil
}

// GetUser 获取用户
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GenerateJWT 生成 JWT Token
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	now := time.Now()
	hours := s.cfg.JWT.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	expiresAt := now.Add(time.Duration(hours) * time.Hour)

	claims := JWTClaims{
		UserID:       user.ID,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 解析 JWT Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid && claims.UserID != 0 {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// ResolveAuthState 获取用户当前鉴权状态，优先读缓存
func (s *AuthService) ResolveAuthState(ctx context.Context, userID uint) (*cache.UserAuthState, error) {
	state, hit, err := cache.GetUserAuthState(ctx, userID)
	if err != nil {
		logger.Warnw("auth_state_cache_get_failed", "user_id", userID, "error", err)
	}
	if hit && state != nil {
		return state, nil
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrTokenRevoked
	}
	state = cache.BuildUserAuthState(user)
	if err := cache.SetUserAuthState(ctx, state); err != nil {
		logger.Warnw("auth_state_cache_set_failed", "user_id", userID, "error", err)
	}
	return state, nil
}

// VerifyClaims 校验 token 版本，返回用户当前角色
func (s *AuthService) VerifyClaims(ctx context.Context, claims *JWTClaims) (string, error) {
	state, err := s.ResolveAuthState(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	if state.TokenVersion != claims.TokenVersion {
		return "", ErrTokenRevoked
	}
	return state.Role, nil
}

func (s *AuthService) ensureIdentityFree(username, email string, excludeID uint) error {
	if username != "" {
		count, err := s.userRepo.CountByUsername(username, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameExists
		}
	}
	if email != "" {
		count, err := s.userRepo.CountByEmail(email, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailExists
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
