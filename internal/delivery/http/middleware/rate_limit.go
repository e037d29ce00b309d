package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"recruiterconnect-backend/internal/delivery/http/response"
	"recruiterconnect-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
	KeyFunc   func(*gin.Context) string
}

// LoginRateLimitConfig throttles credential endpoints per client IP.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:login:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// rateLimitEntry tracks request count for a key (in-memory fallback).
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Atomic increment with TTL set on first hit.
// KEYS[1] = counter key, ARGV[1] = TTL seconds.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit counts requests per key in Redis, falling back to an
// in-process counter when Redis is unavailable. Fails open: a broken
// limiter never blocks traffic.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + cfg.KeyFunc(c)

		count, retryAfter, ok := redisCount(c, key, cfg)
		if !ok {
			count, retryAfter = memoryCount(key, cfg)
		}

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func redisCount(c *gin.Context, key string, cfg RateLimitConfig) (int, time.Duration, bool) {
	client := redis.Client()
	if client == nil {
		return 0, 0, false
	}

	res, err := client.Eval(c.Request.Context(), rateLimitLuaScript,
		[]string{key}, int(cfg.Window.Seconds())).Result()
	if err != nil {
		return 0, 0, false
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 2 {
		return 0, 0, false
	}
	count, _ := vals[0].(int64)
	ttl, _ := vals[1].(int64)
	return int(count), time.Duration(ttl) * time.Second, true
}

func memoryCount(key string, cfg RateLimitConfig) (int, time.Duration) {
	val, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(cfg.Window)
	}
	entry.count++
	return entry.count, time.Until(entry.resetAt)
}
