package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"stampcard/config"
	"stampcard/internal/delivery/api/response"
	deliverycontext "stampcard/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const defaultRateLimitPrefix = "stampcard:rl"

// tokenBucketScript refills and takes one token atomically.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RateLimitMiddleware applies a per-actor token bucket to point-of-sale writes.
type RateLimitMiddleware struct {
	cfg    *config.RateLimitConfig
	client *redis.Client
	logger *slog.Logger
}

// NewRateLimitMiddleware returns a limiter; it passes everything through when disabled or without Redis.
func NewRateLimitMiddleware(cfg *config.Config, client *redis.Client, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		cfg:    cfg.RateLimit,
		client: client,
		logger: logger,
	}
}

func (m *RateLimitMiddleware) enabled() bool {
	return m.client != nil && m.cfg != nil && m.cfg.Enabled && m.cfg.Capacity > 0
}

// Limit must run after Authenticate so the bucket is keyed by actor.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled() {
		return next
	}

	return func(c echo.Context) error {
		key := m.bucketKey(c)
		ttl := m.cfg.TTL
		if ttl < time.Second {
			ttl = time.Hour
		}

		ctx := c.Request().Context()
		vals, err := tokenBucketScript.Run(ctx, m.client, []string{key},
			time.Now().UnixMilli(),
			m.cfg.Capacity,
			m.cfg.RefillTokens,
			m.cfg.RefillInterval.Milliseconds(),
			int64(ttl/time.Second),
		).Result()
		if err != nil {
			// Fail open on Redis errors.
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).
				Warn("Rate limiter unavailable", slog.String("key", key), slog.Any("error", err))

			return next(c)
		}

		arr, ok := vals.([]any)
		if !ok || len(arr) != 3 {
			return next(c)
		}

		allowed := asInt64(arr[0]) == 1
		remaining := asInt64(arr[1])
		retryMs := asInt64(arr[2])

		c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(m.cfg.Capacity))
		c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := max(int(math.Ceil(float64(retryMs)/1000.0)), 0)
			c.Response().Header().Set("Retry-After", strconv.Itoa(secs))

			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Rate limit exceeded",
				map[string]any{"retry_after": secs})
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) bucketKey(c echo.Context) string {
	prefix := m.cfg.Prefix
	if prefix == "" {
		prefix = defaultRateLimitPrefix
	}

	subject := "ip:" + c.RealIP()
	if actorID, ok := GetActorID(c); ok {
		subject = "actor:" + actorID.String()
	}

	return strings.Join([]string{prefix, subject}, ":")
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}

	return 0
}
