package admin

import (
	"strings"

	"github.com/shopfront/internal/http/handlers/shared"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/repository"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateUserRequest 管理端创建用户请求
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// UpdateUserRequest 管理端更新用户请求，密码可选
type UpdateUserRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	users, total, err := h.UserAdminService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Role:     strings.TrimSpace(c.Query("role")),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load users", err)
		return
	}
	response.SuccessWithPage(c, users, response.BuildPagination(page, pageSize, total))
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	user, err := h.UserAdminService.Create(service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		shared.RespondMapped(c, err, userErrorRules)
		return
	}
	response.Created(c, user)
}

// UpdateUser 更新用户
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !shared.BindJSON(c, &req) {
		return
	}
	user, err := h.UserAdminService.Update(id, service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		shared.RespondMapped(c, err, userErrorRules)
		return
	}
	response.Success(c, user)
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	actorID, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.UserAdminService.Delete(actorID, id); err != nil {
		shared.RespondMapped(c, err, userErrorRules)
		return
	}
	response.NoContent(c)
}
