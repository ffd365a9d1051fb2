package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 限流规则
// BlockSeconds > 0 时超限后封禁该 key 一段时间，否则等待窗口自然过期。
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int
}

// 返回 {count, ttl}，count 为 -1 表示处于封禁期
var rateLimitScript = redis.NewScript(`
local blocked = redis.call("TTL", KEYS[2])
if blocked > 0 then
	return {-1, blocked}
end
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local block = tonumber(ARGV[3])
if block > 0 and current > tonumber(ARGV[2]) then
	redis.call("SET", KEYS[2], "1", "EX", block)
	redis.call("DEL", KEYS[1])
	return {-1, block}
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware Redis 频率限制中间件，Redis 不可用时放行
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		if rule.Prefix != "" {
			key = fmt.Sprintf("%s:%s", rule.Prefix, key)
		}

		result, err := rateLimitScript.Run(c.Request.Context(), client,
			[]string{key, key + ":block"},
			rule.WindowSeconds, rule.MaxRequests, rule.BlockSeconds,
		).Result()
		if err != nil {
			logger.Warnw("rate_limit_unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		count, ttlSeconds, ok := parseRateLimitResult(result)
		if !ok {
			logger.Warnw("rate_limit_unexpected_result", "key", key, "result", result)
			c.Next()
			return
		}
		if count < 0 || count > int64(rule.MaxRequests) {
			waitSeconds := int(ttlSeconds)
			if waitSeconds < 1 {
				waitSeconds = rule.WindowSeconds
			}
			if waitSeconds < 1 {
				waitSeconds = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", waitSeconds))
			response.Error(c, response.CodeTooManyRequests,
				fmt.Sprintf("too many attempts, please retry in %d seconds", waitSeconds))
			return
		}

		c.Next()
	}
}

func parseRateLimitResult(result interface{}) (int64, int64, bool) {
	values, ok := result.([]interface{})
	if !ok || len(values) < 2 {
		return 0, 0, false
	}
	count, ok := toInt64(values[0])
	if !ok {
		return 0, 0, false
	}
	ttl, _ := toInt64(values[1])
	return count, ttl, true
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 使用 IP + JSON 字段作为限流 key
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(strings.TrimSpace(readJSONField(c, field)))
		if value == "" {
			return c.ClientIP()
		}
		return fmt.Sprintf("%s|%s", value, c.ClientIP())
	}
}

func readJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	if len(body) == 0 {
		return ""
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	value, ok := payload[field]
	if !ok {
		return ""
	}
	if text, ok := value.(string); ok {
		return strings.TrimSpace(text)
	}
	return ""
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint8:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
