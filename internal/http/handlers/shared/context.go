package shared

import (
	"strconv"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextUint 从上下文读取 uint 值并统一处理错误响应。
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "authentication required", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, "invalid user id", nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, "invalid user id", nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, "invalid user id type", nil)
		return 0, false
	}
}

// GetUserID 当前登录用户 ID
func GetUserID(c *gin.Context) (uint, bool) {
	return GetContextUint(c, constants.ContextKeyUserID)
}

// GetUserRole 当前登录用户角色，未登录时为空
func GetUserRole(c *gin.Context) string {
	if value, ok := c.Get(constants.ContextKeyRole); ok {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}

// OptionalUserID 可选登录场景下的用户 ID
func OptionalUserID(c *gin.Context) uint {
	if value, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	return 0
}

// ParseIDParam 解析路径中的 ID 参数
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		RespondError(c, response.CodeBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return uint(id), true
}
