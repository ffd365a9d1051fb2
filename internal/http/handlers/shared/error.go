package shared

import (
	"errors"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get(constants.ContextKeyRequestID); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，5xx 只记录原始错误不对外暴露。
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"path", c.FullPath(),
			"error", err,
		)
	}
	if code >= response.CodeInternal {
		response.Error(c, code, internalErrorMessage)
		return
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// MappedError 定义业务错误到 HTTP 状态码的映射关系。
type MappedError struct {
	Target error
	Code   int
}

// RespondMapped 按规则表输出错误，命中规则时使用业务错误信息。
func RespondMapped(c *gin.Context, err error, rules []MappedError) {
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, err.Error(), nil)
			return
		}
	}
	RespondError(c, response.CodeInternal, internalErrorMessage, err)
}

// ConcatMappedErrors 合并多组映射规则。
func ConcatMappedErrors(groups ...[]MappedError) []MappedError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]MappedError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}
