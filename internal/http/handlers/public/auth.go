package public

import (
	"time"

	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 登录/注册响应
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !shared.BindJSON(c, &req) {
		return
	}

	user, err := h.AuthService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		shared.RespondMapped(c, err, authErrorRules)
		return
	}

	token, expiresAt, err := h.AuthService.GenerateJWT(user)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "token generation failed", err)
		return
	}
	response.Created(c, AuthResponse{Token: token, ExpiresAt: expiresAt, User: user})
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !shared.BindJSON(c, &req) {
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		shared.RespondMapped(c, err, authErrorRules)
		return
	}
	response.Success(c, AuthResponse{Token: token, ExpiresAt: expiresAt, User: user})
}

// Me 当前登录用户
func (h *Handler) Me(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	user, err := h.AuthService.GetUser(uid)
	if err != nil {
		shared.RespondMapped(c, err, authErrorRules)
		return
	}
	response.Success(c, user)
}
