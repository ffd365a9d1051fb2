package router

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopfront/internal/authz"
	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = constants.ContextKeyRequestID
const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
			requestIDHeader,
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

// RecoveryMiddleware panic 兜底，返回统一 500 响应
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorw("request_panic_recovered",
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		response.Error(c, response.CodeInternal, "internal server error")
	})
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// bearerToken 提取 Authorization 中的 Bearer token
func bearerToken(c *gin.Context) (string, error) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && strings.EqualFold(parts[0], "Bearer")) || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("authorization header must be: Bearer <token>")
	}
	return strings.TrimSpace(parts[1]), nil
}

// authenticate 解析并校验 token，返回用户 ID 与当前角色
func authenticate(c *gin.Context, authService *service.AuthService) (uint, string, error) {
	tokenString, err := bearerToken(c)
	if err != nil {
		return 0, "", err
	}
	claims, err := authService.ParseJWT(tokenString)
	if err != nil {
		return 0, "", errors.New("invalid or expired token")
	}
	role, err := authService.VerifyClaims(c.Request.Context(), claims)
	if err != nil {
		if errors.Is(err, service.ErrTokenRevoked) {
			return 0, "", err
		}
		logger.Errorw("auth_state_resolve_failed", "user_id", claims.UserID, "error", err)
		return 0, "", errors.New("invalid or expired token")
	}
	return claims.UserID, role, nil
}

// JWTAuthMiddleware 用户 JWT 鉴权中间件
func JWTAuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService == nil {
			response.Unauthorized(c, "authentication unavailable")
			return
		}
		userID, role, err := authenticate(c, authService)
		if err != nil {
			response.Unauthorized(c, err.Error())
			return
		}
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyRole, role)
		c.Next()
	}
}

// OptionalAuthMiddleware 可选鉴权，token 缺失或无效时按匿名处理
func OptionalAuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService == nil || strings.TrimSpace(c.GetHeader("Authorization")) == "" {
			c.Next()
			return
		}
		userID, role, err := authenticate(c, authService)
		if err != nil {
			logger.Debugw("optional_auth_ignored", "request_id", getRequestID(c), "error", err)
			c.Next()
			return
		}
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyRole, role)
		c.Next()
	}
}

// AdminRBACMiddleware 管理端 RBAC 鉴权中间件，需在 JWTAuthMiddleware 之后
func AdminRBACMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authzService == nil {
			logger.Errorw("admin_rbac_service_unavailable")
			response.Forbidden(c, "access denied")
			return
		}

		role := c.GetString(constants.ContextKeyRole)
		if strings.TrimSpace(role) == "" {
			response.Unauthorized(c, "authentication required")
			return
		}

		resource := c.FullPath()
		if strings.TrimSpace(resource) == "" {
			resource = c.Request.URL.Path
		}

		allowed, err := authzService.EnforceRole(role, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("admin_rbac_enforce_failed",
				"role", role,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			response.Forbidden(c, "access denied")
			return
		}
		if !allowed {
			logger.Warnw("admin_rbac_permission_denied",
				"user_id", c.GetUint(constants.ContextKeyUserID),
				"role", role,
				"method", c.Request.Method,
				"resource", authz.NormalizeObject(resource),
			)
			response.Forbidden(c, "admin access required")
			return
		}

		c.Next()
	}
}
